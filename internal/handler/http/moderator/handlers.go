// Package moderator provides the HTTP handlers of the moderation stage:
// reviewing unmoderated submissions, editing them, accepting them into the
// analyst queue and rejecting them.
package moderator

import (
	"net/http"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/article"
	"speed/internal/handler/http/respond"
	"speed/internal/usecase/workflow"
)

const msgNotUpdated = "Error: Article not updated!"

// IndexResponse is the body of GET /moderator/index.
type IndexResponse struct {
	Message     string                     `json:"message" example:"All unmoderated articles data found successfully"`
	ArticleData []article.QueuedArticleDTO `json:"articleData"`
	Duplicates  []workflow.Duplicate       `json:"duplicates"`
	// DuplicateDOIs lists the DOIs of duplicates once each, for clients
	// that only check membership.
	DuplicateDOIs []string `json:"duplicateDois"`
}

// ArticleResponse carries one queued submission.
type ArticleResponse struct {
	Message         string                   `json:"message" example:"Article found successfully"`
	ExistingArticle article.QueuedArticleDTO `json:"existingArticle"`
	Warnings        []string                 `json:"warnings,omitempty"`
}

// DeleteResponse is the body of a rejection.
type DeleteResponse struct {
	Message        string              `json:"message" example:"Article deleted successfully"`
	DeletedArticle article.RejectedDTO `json:"deletedArticle"`
}

type IndexHandler struct{ Workflow *workflow.Service }

// ServeHTTP 未モデレート一覧
// @Summary      未モデレート一覧
// @Description  Lists unmoderated submissions in submission order. duplicates flags entries
// @Description  whose DOI is already published or was rejected before; duplicateDois holds
// @Description  the same DOIs as a plain string list.
// @Tags         moderator
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} IndexResponse
// @Failure      401 {object} respond.ErrorBody
// @Failure      403 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /moderator/index [get]
func (h IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	queued, err := h.Workflow.ListUnmoderated(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	dups, err := h.Workflow.Duplicates(r.Context(), queued)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, IndexResponse{
		Message:       "All unmoderated articles data found successfully",
		ArticleData:   article.NewQueuedArticleDTOs(queued),
		Duplicates:    dups,
		DuplicateDOIs: duplicateDOIs(dups),
	})
}

func duplicateDOIs(dups []workflow.Duplicate) []string {
	out := make([]string, 0, len(dups))
	seen := make(map[string]bool, len(dups))
	for _, d := range dups {
		if seen[d.DOI] {
			continue
		}
		seen[d.DOI] = true
		out = append(out, d.DOI)
	}
	return out
}

type GetHandler struct{ Workflow *workflow.Service }

// ServeHTTP 投稿詳細
// @Summary      投稿詳細
// @Tags         moderator
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "queued article id"
// @Success      200 {object} ArticleResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /moderator/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := h.Workflow.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		article.WriteWorkflowError(w, err, msgNotUpdated)
		return
	}
	respond.JSON(w, http.StatusOK, ArticleResponse{
		Message:         "Article found successfully",
		ExistingArticle: article.NewQueuedArticleDTO(q),
	})
}

// PatchRequest is a partial edit. Omitted fields keep their value.
type PatchRequest struct {
	Title       *string               `json:"title"`
	Authors     *article.StringList   `json:"authors" swaggertype:"array,string"`
	Date        *string               `json:"date"`
	Journal     *string               `json:"journal"`
	Volume      *article.NumberString `json:"volume" swaggertype:"string"`
	Issue       *article.NumberString `json:"issue" swaggertype:"string"`
	PageRange   *[]int                `json:"pageRange"`
	DOI         *string               `json:"doi"`
	Keywords    *article.StringList   `json:"keywords" swaggertype:"array,string"`
	Abstract    *string               `json:"abstract"`
	IsModerated *bool                 `json:"isModerated"`
}

func (p PatchRequest) patch() workflow.Patch {
	out := workflow.Patch{
		Title:       p.Title,
		Date:        p.Date,
		Journal:     p.Journal,
		PageRange:   p.PageRange,
		DOI:         p.DOI,
		Abstract:    p.Abstract,
		IsModerated: p.IsModerated,
	}
	if p.Authors != nil {
		v := []string(*p.Authors)
		out.Authors = &v
	}
	if p.Keywords != nil {
		v := []string(*p.Keywords)
		out.Keywords = &v
	}
	if p.Volume != nil {
		v := string(*p.Volume)
		out.Volume = &v
	}
	if p.Issue != nil {
		v := string(*p.Issue)
		out.Issue = &v
	}
	return out
}

type UpdateHandler struct{ Workflow *workflow.Service }

// ServeHTTP 投稿編集
// @Summary      投稿編集
// @Description  Applies a partial edit and re-validates the whole record.
// @Tags         moderator
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string       true "queued article id"
// @Param        body body PatchRequest true "fields to change"
// @Success      200 {object} ArticleResponse
// @Failure      400 {object} respond.ErrorBody "Error: Article not updated!"
// @Failure      404 {object} respond.ErrorBody
// @Router       /moderator/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req PatchRequest
	if !article.ReadJSON(w, r, &req, msgNotUpdated) {
		return
	}
	q, warnings, err := h.Workflow.Update(r.Context(), r.PathValue("id"), req.patch())
	if err != nil {
		article.WriteWorkflowError(w, err, msgNotUpdated)
		return
	}
	respond.JSON(w, http.StatusOK, ArticleResponse{
		Message:         "Article has been successfully updated",
		ExistingArticle: article.NewQueuedArticleDTO(q),
		Warnings:        warnings,
	})
}

type AcceptHandler struct{ Workflow *workflow.Service }

// ServeHTTP モデレート承認
// @Summary      モデレート承認
// @Description  Marks the submission moderated so it moves to the analyst queue. Idempotent.
// @Tags         moderator
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "queued article id"
// @Success      200 {object} ArticleResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /moderator/promote/{id} [put]
func (h AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := h.Workflow.MarkModerated(r.Context(), r.PathValue("id"))
	if err != nil {
		article.WriteWorkflowError(w, err, msgNotUpdated)
		return
	}
	respond.JSON(w, http.StatusOK, ArticleResponse{
		Message:         "Article moderated successfully",
		ExistingArticle: article.NewQueuedArticleDTO(q),
	})
}

// RejectHandler removes a queued submission and records its DOI. It serves
// both review stages.
type RejectHandler struct {
	Workflow *workflow.Service
	Stage    entity.RejectionStage
}

// ServeHTTP 投稿却下
// @Summary      投稿却下
// @Description  Removes the submission from the queue and records its DOI as rejected.
// @Tags         moderator
// @Security     BearerAuth
// @Produce      json
// @Param        id     path  string true  "queued article id"
// @Param        reason query string false "rejection reason"
// @Success      200 {object} DeleteResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /moderator/{id} [delete]
// @Router       /analyst/{id} [delete]
func (h RejectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Workflow.Reject(r.Context(), r.PathValue("id"), r.URL.Query().Get("reason"), h.Stage)
	if err != nil {
		article.WriteWorkflowError(w, err, msgNotUpdated)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{
		Message:        "Article deleted successfully",
		DeletedArticle: article.NewRejectedDTO(entry),
	})
}
