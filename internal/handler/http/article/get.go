package article

import (
	"errors"
	"net/http"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/pathutil"
	"speed/internal/handler/http/respond"
	artUC "speed/internal/usecase/article"
)

// GetResponse is the body of the single-article lookups.
type GetResponse struct {
	Message         string     `json:"message" example:"Article found successfully"`
	ExistingArticle ArticleDTO `json:"existingArticle"`
}

// ExistsResponse is the body of GET /articles/includes/{id}.
type ExistsResponse struct {
	Message string `json:"message" example:"Article does not exist"`
	Exists  bool   `json:"exists"`
}

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Tags         articles
// @Produce      json
// @Param        id path string true "article id (UUID)"
// @Success      200 {object} GetResponse
// @Failure      400 {object} respond.ErrorBody "invalid id"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/id/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	article, err := h.Svc.Get(r.Context(), id)
	writeArticle(w, article, err)
}

type GetByDOIHandler struct{ Svc *artUC.Service }

// ServeHTTP DOIで記事取得
// @Summary      DOIで記事取得
// @Description  The DOI may be sent raw (with slashes) or percent-encoded.
// @Tags         articles
// @Produce      json
// @Param        doi path string true "DOI" example(10.1007/s10664-021-09999-1)
// @Success      200 {object} GetResponse
// @Failure      400 {object} respond.ErrorBody "invalid doi"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/doi/{doi} [get]
func (h GetByDOIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doi, err := pathutil.ParseDOI(r.PathValue("doi"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	article, err := h.Svc.GetByDOI(r.Context(), doi)
	writeArticle(w, article, err)
}

func writeArticle(w http.ResponseWriter, article *entity.Article, err error) {
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.Error(w, http.StatusNotFound, "Article not found")
	case errors.Is(err, artUC.ErrInvalidArticleID), errors.Is(err, artUC.ErrInvalidDOI):
		respond.SafeError(w, http.StatusBadRequest, err)
	case err != nil:
		respond.SafeError(w, http.StatusInternalServerError, err)
	default:
		respond.JSON(w, http.StatusOK, GetResponse{
			Message:         "Article found successfully",
			ExistingArticle: NewArticleDTO(article),
		})
	}
}

type IncludesHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事の存在確認
// @Summary      記事の存在確認
// @Description  Always 200; a malformed id is reported as not existing.
// @Tags         articles
// @Produce      json
// @Param        id path string true "article id"
// @Success      200 {object} ExistsResponse
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/includes/{id} [get]
func (h IncludesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	exists, err := h.Svc.Exists(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	msg := "Article does not exist"
	if exists {
		msg = "Article found successfully"
	}
	respond.JSON(w, http.StatusOK, ExistsResponse{Message: msg, Exists: exists})
}
