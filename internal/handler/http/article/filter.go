package article

import (
	"net/http"

	"speed/internal/handler/http/respond"
	artUC "speed/internal/usecase/article"
)

// FilterResponse is the body of GET /articles/filter.
type FilterResponse struct {
	Message          string       `json:"message" example:"Filtered articles data found successfully"`
	Keywords         []string     `json:"keywords"`
	FilteredArticles []ArticleDTO `json:"filteredArticles"`
}

type FilterHandler struct{ Svc *artUC.Service }

// ServeHTTP キーワード検索
// @Summary      キーワード検索
// @Description  Case-sensitive substring match over every article field. Keywords are
// @Description  comma separated; an article matching several keywords is listed once per match.
// @Description  Empty entries are ignored rather than matching everything, so "?keywords=" or
// @Description  "?keywords=,," is a 400.
// @Tags         articles
// @Produce      json
// @Param        keywords query string true "comma separated keywords" example(tdd,agile)
// @Success      200 {object} FilterResponse
// @Failure      400 {object} respond.ErrorBody "keywords query parameter is required"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/filter [get]
func (h FilterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	keywords := artUC.ParseKeywords(r.URL.Query().Get("keywords"))
	if len(keywords) == 0 {
		respond.Error(w, http.StatusBadRequest, "keywords query parameter is required")
		return
	}

	articles, err := h.Svc.FilterByKeywords(r.Context(), keywords)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, FilterResponse{
		Message:          "Filtered articles data found successfully",
		Keywords:         keywords,
		FilteredArticles: NewArticleDTOs(articles),
	})
}
