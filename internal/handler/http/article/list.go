package article

import (
	"net/http"

	"speed/internal/handler/http/respond"
	artUC "speed/internal/usecase/article"
)

// ListResponse is the body of GET /articles.
type ListResponse struct {
	Message     string       `json:"message" example:"All articles data found successfully"`
	ArticleData []ArticleDTO `json:"articleData"`
}

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 公開記事一覧
// @Summary      公開記事一覧
// @Description  Returns every published article in insertion order.
// @Tags         articles
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, ListResponse{
		Message:     "All articles data found successfully",
		ArticleData: NewArticleDTOs(articles),
	})
}
