package analyst_test

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
	"speed/internal/handler/http/analyst"
	"speed/internal/usecase/workflow"
	"speed/tests/fixtures"
)

func setup(t *testing.T) (*http.ServeMux, fixtures.Stores, *workflow.Service) {
	t.Helper()
	stores := fixtures.OpenStores(t)
	wf := stores.Workflow()
	mux := http.NewServeMux()
	analyst.Register(mux, wf, nil)
	return mux, stores, wf
}

func moderated(t *testing.T, wf *workflow.Service, opts ...fixtures.SubmissionOption) *entity.QueuedArticle {
	t.Helper()
	res, err := wf.Submit(context.Background(), fixtures.NewSubmission(opts...))
	require.NoError(t, err)
	q, err := wf.MarkModerated(context.Background(), res.Article.ID)
	require.NoError(t, err)
	return q
}

func do(t *testing.T, mux http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), rr.Body.String())
	return rr.Code, decoded
}

func TestIndex_OnlyModerated(t *testing.T) {
	mux, _, wf := setup(t)
	_, err := wf.Submit(context.Background(), fixtures.NewSubmission(fixtures.WithTitle("waiting")))
	require.NoError(t, err)
	q := moderated(t, wf)

	code, body := do(t, mux, http.MethodGet, "/analyst/index", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "All moderated articles data found successfully", body["message"])
	data := body["articleData"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, q.ID, data[0].(map[string]any)["_id"])
	assert.Equal(t, true, data[0].(map[string]any)["isModerated"])
}

func TestGet(t *testing.T) {
	mux, _, wf := setup(t)
	q := moderated(t, wf)

	code, body := do(t, mux, http.MethodGet, "/analyst/"+q.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, q.Title, body["existingArticle"].(map[string]any)["title"])
}

func TestPromote_MovesToPublishedStore(t *testing.T) {
	mux, stores, wf := setup(t)
	q := moderated(t, wf)

	code, body := do(t, mux, http.MethodPost, "/analyst/promote/"+q.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Article promoted to database successfully", body["message"])
	assert.Equal(t, q.ID, body["newArticle"].(map[string]any)["_id"])

	published, err := stores.Articles.Get(context.Background(), q.ID)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, q.DOI, published.DOI)

	remaining, err := stores.Queue.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Nil(t, remaining)

	code, body = do(t, mux, http.MethodPost, "/analyst/promote/"+q.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Article not found", body["message"])
}

func TestDiscard_RecordsAnalystStage(t *testing.T) {
	mux, _, wf := setup(t)
	q := moderated(t, wf, fixtures.WithDOI("10.1/weak"))

	code, body := do(t, mux, http.MethodDelete, "/analyst/"+q.ID+"?reason=weak+evidence", "")
	require.Equal(t, http.StatusOK, code)
	deleted := body["deletedArticle"].(map[string]any)
	assert.Equal(t, "analyst", deleted["stage"])
	assert.Equal(t, "weak evidence", deleted["reason"])

	code, body = do(t, mux, http.MethodGet, "/rejected", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "All rejected articles data found successfully", body["message"])
	rejected := body["rejectedData"].([]any)
	require.Len(t, rejected, 1)
	assert.Equal(t, "10.1/weak", rejected[0].(map[string]any)["doi"])
}

func TestCreateAlias(t *testing.T) {
	mux, stores, _ := setup(t)

	code, body := do(t, mux, http.MethodPost, "/analyst", fixtures.SubmissionJSON(fixtures.NewSubmission()))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Article has been created successfully", body["message"])

	queued, err := stores.Queue.ListByModeration(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, queued, 1)
}

func TestInvalidID(t *testing.T) {
	mux, _, _ := setup(t)

	for _, req := range []struct{ method, target string }{
		{http.MethodGet, "/analyst/abc"},
		{http.MethodPost, "/analyst/promote/abc"},
		{http.MethodDelete, "/analyst/abc"},
	} {
		code, body := do(t, mux, req.method, req.target, "")
		assert.Equal(t, http.StatusBadRequest, code, req.target)
		assert.Equal(t, "invalid queued article ID", body["message"])
	}
}
