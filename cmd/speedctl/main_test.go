package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speed/tests/fixtures"
)

func runCLI(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--driver", "sqlite", "--database", dbPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setupDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speed.db")
	out, _, err := runCLI(t, path, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "Schema is up to date (sqlite)")
	return path
}

func writeImportFile(t *testing.T, records ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte("["+strings.Join(records, ",")+"]"), 0o600))
	return path
}

type queuedJSON struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

func listQueue(t *testing.T, dbPath string, extra ...string) []queuedJSON {
	t.Helper()
	out, _, err := runCLI(t, dbPath, append([]string{"--json", "queue", "list"}, extra...)...)
	require.NoError(t, err)
	var got []queuedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

/* ───────── ワークフロー全体 ───────── */

func TestCLI_ImportModeratePublish(t *testing.T) {
	dbPath := setupDB(t)

	file := writeImportFile(t,
		fixtures.SubmissionJSON(fixtures.NewSubmission()),
		fixtures.SubmissionJSON(fixtures.NewSubmission(
			fixtures.WithTitle("Pair programming revisited"),
			fixtures.WithDOI("10.1109/TSE.2020.0001"),
			fixtures.WithKeywords("pairing"),
		)),
		`{"title": ""}`,
	)
	out, stderr, err := runCLI(t, dbPath, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Queued")
	assert.Contains(t, stderr, "record 2")

	queued := listQueue(t, dbPath)
	require.Len(t, queued, 2)
	assert.Equal(t, "Test-driven development in practice", queued[0].Title)

	out, _, err = runCLI(t, dbPath, "queue", "accept", queued[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Moderated "+queued[0].ID)

	moderated := listQueue(t, dbPath, "--moderated")
	require.Len(t, moderated, 1)

	out, _, err = runCLI(t, dbPath, "queue", "promote", queued[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Published "+queued[0].ID)

	out, _, err = runCLI(t, dbPath, "articles", "search", "tdd")
	require.NoError(t, err)
	assert.Contains(t, out, "Test-driven development in practice")

	out, _, err = runCLI(t, dbPath, "articles", "search", "TDD")
	require.NoError(t, err)
	assert.Contains(t, out, "No articles found")

	out, _, err = runCLI(t, dbPath, "queue", "reject", queued[1].ID, "--reason", "out of scope")
	require.NoError(t, err)
	assert.Contains(t, out, "10.1109/TSE.2020.0001")

	out, _, err = runCLI(t, dbPath, "rejected")
	require.NoError(t, err)
	assert.Contains(t, out, "out of scope")
	assert.Contains(t, out, "moderator")

	out, _, err = runCLI(t, dbPath, "--json", "status")
	require.NoError(t, err)
	var digest struct{ Unmoderated, Moderated, Articles, Rejected int64 }
	require.NoError(t, json.Unmarshal([]byte(out), &digest))
	assert.Equal(t, int64(0), digest.Unmoderated+digest.Moderated)
	assert.Equal(t, int64(1), digest.Articles)
	assert.Equal(t, int64(1), digest.Rejected)
}

func TestCLI_ImportDryRun(t *testing.T) {
	dbPath := setupDB(t)
	file := writeImportFile(t, fixtures.SubmissionJSON(fixtures.NewSubmission()))

	out, _, err := runCLI(t, dbPath, "--json", "import", "--dry-run", file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"queued":1,"invalid":0,"failed":0,"errors":[]}`, out)
	assert.Empty(t, listQueue(t, dbPath))
}

/* ───────── エラー ───────── */

func TestCLI_Errors(t *testing.T) {
	dbPath := setupDB(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid id", []string{"queue", "show", "not-a-uuid"}, "invalid queued article ID"},
		{"missing id", []string{"queue", "promote", "6f1c2a1e-8d4b-4a8e-9a57-1f2b3c4d5e6f"}, "queued article not found"},
		{"bad stage", []string{"queue", "reject", "6f1c2a1e-8d4b-4a8e-9a57-1f2b3c4d5e6f", "--stage", "editor"}, "invalid rejection stage"},
		{"no args", []string{"queue", "accept"}, "accepts 1 arg(s)"},
		{"missing file", []string{"import", filepath.Join(t.TempDir(), "none.json")}, "no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, dbPath, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCLI_UnsupportedDriver(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--driver", "mysql", "status"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "mysql"`)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Store", "Count"}, [][]string{{"Published", "3"}, {"Rejected"}}, []columnAlignment{alignLeft, alignRight})
	assert.Contains(t, out, "Published")
	assert.Contains(t, out, "╭")
	assert.Empty(t, renderTable(nil, nil, nil))
}
