package moderator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/moderator"
	"speed/internal/usecase/workflow"
	"speed/tests/fixtures"
)

type env struct {
	mux    *http.ServeMux
	stores fixtures.Stores
	wf     *workflow.Service
}

func setup(t *testing.T) env {
	t.Helper()
	stores := fixtures.OpenStores(t)
	wf := stores.Workflow()
	mux := http.NewServeMux()
	moderator.Register(mux, wf)
	return env{mux: mux, stores: stores, wf: wf}
}

func (e env) submit(t *testing.T, opts ...fixtures.SubmissionOption) *entity.QueuedArticle {
	t.Helper()
	res, err := e.wf.Submit(context.Background(), fixtures.NewSubmission(opts...))
	require.NoError(t, err)
	return res.Article
}

func (e env) do(t *testing.T, method, target, body string) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), rr.Body.String())
	return rr.Code, decoded
}

func TestIndex_ListsUnmoderatedWithDuplicates(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	published := e.submit(t, fixtures.WithDOI("10.1/published"))
	_, err := e.wf.Promote(ctx, published.ID)
	require.NoError(t, err)
	rejected := e.submit(t, fixtures.WithDOI("10.1/rejected"))
	_, err = e.wf.Reject(ctx, rejected.ID, "out of scope", entity.StageModerator)
	require.NoError(t, err)

	again := e.submit(t, fixtures.WithDOI("10.1/published"))
	fresh := e.submit(t, fixtures.WithDOI("10.1/fresh"))
	moderated := e.submit(t, fixtures.WithDOI("10.1/rejected"))
	_, err = e.wf.MarkModerated(ctx, moderated.ID)
	require.NoError(t, err)

	code, body := e.do(t, http.MethodGet, "/moderator/index", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "All unmoderated articles data found successfully", body["message"])

	data := body["articleData"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, again.ID, data[0].(map[string]any)["_id"])
	assert.Equal(t, fresh.ID, data[1].(map[string]any)["_id"])

	dups := body["duplicates"].([]any)
	require.Len(t, dups, 1)
	assert.Equal(t, map[string]any{
		"_id": again.ID, "doi": "10.1/published", "published": true, "rejected": false,
	}, dups[0])
	assert.Equal(t, []any{"10.1/published"}, body["duplicateDois"])
}

func TestIndex_EmptyQueue(t *testing.T) {
	e := setup(t)

	code, body := e.do(t, http.MethodGet, "/moderator/index", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["articleData"])
	assert.Equal(t, []any{}, body["duplicates"])
	assert.Equal(t, []any{}, body["duplicateDois"])
}

func TestGet(t *testing.T) {
	e := setup(t)
	q := e.submit(t)

	code, body := e.do(t, http.MethodGet, "/moderator/"+q.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, q.ID, body["existingArticle"].(map[string]any)["_id"])

	code, body = e.do(t, http.MethodGet, "/moderator/"+entity.NewID(), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Article not found", body["message"])

	code, _ = e.do(t, http.MethodGet, "/moderator/123", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpdate(t *testing.T) {
	e := setup(t)
	q := e.submit(t)

	code, body := e.do(t, http.MethodPut, "/moderator/"+q.ID, `{"title":"Renamed","volume":"30","keywords":"a,b"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Article has been successfully updated", body["message"])

	got, err := e.stores.Queue.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 30, got.Volume)
	assert.Equal(t, []string{"a", "b"}, got.Keywords)
	assert.Equal(t, q.DOI, got.DOI)
	assert.False(t, got.IsModerated)
}

func TestUpdate_ValidationFailureLeavesRecord(t *testing.T) {
	e := setup(t)
	q := e.submit(t)

	code, body := e.do(t, http.MethodPut, "/moderator/"+q.ID, `{"issue":"four"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error: Article not updated!", body["message"])
	assert.Contains(t, body["fields"], "issue")

	got, err := e.stores.Queue.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Issue)
}

func TestUpdate_CanSetModerated(t *testing.T) {
	e := setup(t)
	q := e.submit(t)

	code, body := e.do(t, http.MethodPut, "/moderator/"+q.ID, `{"isModerated":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["existingArticle"].(map[string]any)["isModerated"])
}

func TestAccept(t *testing.T) {
	e := setup(t)
	q := e.submit(t)

	for i := 0; i < 2; i++ {
		code, body := e.do(t, http.MethodPut, "/moderator/promote/"+q.ID, "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Article moderated successfully", body["message"])
	}

	unmoderated, err := e.wf.ListUnmoderated(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unmoderated)
	moderated, err := e.wf.ListModerated(context.Background())
	require.NoError(t, err)
	require.Len(t, moderated, 1)
	assert.Equal(t, q.ID, moderated[0].ID)
}

func TestReject(t *testing.T) {
	e := setup(t)
	q := e.submit(t, fixtures.WithDOI("10.1/spam"))

	code, body := e.do(t, http.MethodDelete, "/moderator/"+q.ID+"?reason=off-topic", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Article deleted successfully", body["message"])

	deleted := body["deletedArticle"].(map[string]any)
	assert.Equal(t, "10.1/spam", deleted["doi"])
	assert.Equal(t, "off-topic", deleted["reason"])
	assert.Equal(t, "moderator", deleted["stage"])
	assert.NotEqual(t, q.ID, deleted["_id"])

	got, err := e.stores.Queue.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	code, _ = e.do(t, http.MethodDelete, "/moderator/"+q.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
}
