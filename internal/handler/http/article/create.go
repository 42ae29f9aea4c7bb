package article

import (
	"errors"
	"io"
	"net/http"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/respond"
	"speed/internal/usecase/workflow"
)

// CreateResponse is the body of a successful submission.
type CreateResponse struct {
	Message    string           `json:"message" example:"Article has been created successfully"`
	NewArticle QueuedArticleDTO `json:"newArticle"`
	Warnings   []string         `json:"warnings,omitempty"`
}

// msgNotCreated is the message the submission form shows on any 400.
const msgNotCreated = "Error: Article not created!"

type CreateHandler struct{ Workflow *workflow.Service }

// ServeHTTP 記事投稿
// @Summary      記事投稿
// @Description  Validates a submission and adds it to the moderation queue.
// @Description  Links in the abstract are removed and reported in warnings.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body SubmissionRequest true "submission form"
// @Success      201 {object} CreateResponse
// @Failure      400 {object} respond.ErrorBody "Error: Article not created!"
// @Failure      413 {object} respond.ErrorBody "request body too large"
// @Failure      429 {object} respond.ErrorBody "rate limit exceeded"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/new [post]
// @Router       /analyst [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, ok := ReadSubmission(w, r, msgNotCreated)
	if !ok {
		return
	}

	res, err := h.Workflow.Submit(r.Context(), sub)
	if err != nil {
		WriteWorkflowError(w, err, msgNotCreated)
		return
	}
	respond.JSON(w, http.StatusCreated, CreateResponse{
		Message:    "Article has been created successfully",
		NewArticle: NewQueuedArticleDTO(res.Article),
		Warnings:   res.Warnings,
	})
}

// ReadSubmission decodes the request body into a submission. On failure it
// writes the response and returns false.
func ReadSubmission(w http.ResponseWriter, r *http.Request, invalidMsg string) (entity.Submission, bool) {
	var req SubmissionRequest
	if !ReadJSON(w, r, &req, invalidMsg) {
		return entity.Submission{}, false
	}
	return req.Submission(), true
}

// ReadJSON decodes the request body into dst. A body over the size limit
// gets 413; anything undecodable gets a 400 envelope carrying invalidMsg.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any, invalidMsg string) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := DecodeJSON(body, dst); err != nil {
		WriteWorkflowError(w, err, invalidMsg)
		return false
	}
	return true
}

// WriteWorkflowError maps workflow errors to responses. Validation failures
// become a 400 carrying invalidMsg and the failing fields.
func WriteWorkflowError(w http.ResponseWriter, err error, invalidMsg string) {
	var fields entity.ValidationErrors
	switch {
	case errors.As(err, &fields):
		respond.ValidationError(w, invalidMsg, fields)
	case errors.Is(err, workflow.ErrInvalidQueuedArticleID), errors.Is(err, workflow.ErrInvalidStage):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, workflow.ErrQueuedArticleNotFound), errors.Is(err, entity.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Article not found")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
