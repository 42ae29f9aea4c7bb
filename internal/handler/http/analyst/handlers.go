// Package analyst provides the HTTP handlers of the analysis stage: the
// moderated queue, promotion into the published database, discards and the
// rejected list.
package analyst

import (
	"net/http"

	"speed/internal/handler/http/article"
	"speed/internal/handler/http/respond"
	"speed/internal/usecase/workflow"
)

const msgNotPromoted = "Error: Article not promoted!"

// IndexResponse is the body of GET /analyst/index.
type IndexResponse struct {
	Message     string                     `json:"message" example:"All moderated articles data found successfully"`
	ArticleData []article.QueuedArticleDTO `json:"articleData"`
}

// ArticleResponse carries one queued submission.
type ArticleResponse struct {
	Message         string                   `json:"message" example:"Article found successfully"`
	ExistingArticle article.QueuedArticleDTO `json:"existingArticle"`
}

// PromoteResponse is the body of a successful promotion.
type PromoteResponse struct {
	Message    string             `json:"message" example:"Article promoted to database successfully"`
	NewArticle article.ArticleDTO `json:"newArticle"`
}

// RejectedResponse is the body of GET /rejected.
type RejectedResponse struct {
	Message      string                `json:"message" example:"All rejected articles data found successfully"`
	RejectedData []article.RejectedDTO `json:"rejectedData"`
}

type IndexHandler struct{ Workflow *workflow.Service }

// ServeHTTP 分析待ち一覧
// @Summary      分析待ち一覧
// @Tags         analyst
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} IndexResponse
// @Failure      401 {object} respond.ErrorBody
// @Failure      403 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /analyst/index [get]
func (h IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	queued, err := h.Workflow.ListModerated(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, IndexResponse{
		Message:     "All moderated articles data found successfully",
		ArticleData: article.NewQueuedArticleDTOs(queued),
	})
}

type GetHandler struct{ Workflow *workflow.Service }

// ServeHTTP 投稿詳細
// @Summary      投稿詳細
// @Tags         analyst
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "queued article id"
// @Success      200 {object} ArticleResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /analyst/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := h.Workflow.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		article.WriteWorkflowError(w, err, msgNotPromoted)
		return
	}
	respond.JSON(w, http.StatusOK, ArticleResponse{
		Message:         "Article found successfully",
		ExistingArticle: article.NewQueuedArticleDTO(q),
	})
}

type PromoteHandler struct{ Workflow *workflow.Service }

// ServeHTTP 記事公開
// @Summary      記事公開
// @Description  Copies the submission into the published database, keeping its id,
// @Description  and removes it from the queue.
// @Tags         analyst
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "queued article id"
// @Success      200 {object} PromoteResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /analyst/promote/{id} [post]
func (h PromoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, err := h.Workflow.Promote(r.Context(), r.PathValue("id"))
	if err != nil {
		article.WriteWorkflowError(w, err, msgNotPromoted)
		return
	}
	respond.JSON(w, http.StatusOK, PromoteResponse{
		Message:    "Article promoted to database successfully",
		NewArticle: article.NewArticleDTO(a),
	})
}

type RejectedHandler struct{ Workflow *workflow.Service }

// ServeHTTP 却下済み一覧
// @Summary      却下済み一覧
// @Description  Rejected DOIs, most recent first.
// @Tags         analyst
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} RejectedResponse
// @Failure      500 {object} respond.ErrorBody
// @Router       /rejected [get]
func (h RejectedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Workflow.ListRejected(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, RejectedResponse{
		Message:      "All rejected articles data found successfully",
		RejectedData: article.NewRejectedDTOs(entries),
	})
}
