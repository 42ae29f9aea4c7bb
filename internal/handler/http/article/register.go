package article

import (
	"net/http"

	artUC "speed/internal/usecase/article"
	"speed/internal/usecase/workflow"
)

// Register mounts the public article routes. submitLimit wraps the
// submission endpoint (per-IP rate limit); nil leaves it unwrapped.
func Register(mux *http.ServeMux, queries *artUC.Service, wf *workflow.Service, submitLimit func(http.Handler) http.Handler) {
	mux.Handle("GET /articles", ListHandler{queries})
	mux.Handle("GET /articles/filter", FilterHandler{queries})
	mux.Handle("GET /articles/id/{id}", GetHandler{queries})
	mux.Handle("GET /articles/doi/{doi...}", GetByDOIHandler{queries})
	mux.Handle("GET /articles/includes/{id}", IncludesHandler{queries})

	var create http.Handler = CreateHandler{wf}
	if submitLimit != nil {
		create = submitLimit(create)
	}
	mux.Handle("POST /articles/new", create)
}
