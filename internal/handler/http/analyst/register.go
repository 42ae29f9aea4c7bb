package analyst

import (
	"net/http"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/article"
	"speed/internal/handler/http/moderator"
	"speed/internal/usecase/workflow"
)

// Register mounts the analysis routes. POST /analyst accepts submissions
// exactly like POST /articles/new and goes through the same submitLimit
// (nil leaves it unwrapped).
func Register(mux *http.ServeMux, wf *workflow.Service, submitLimit func(http.Handler) http.Handler) {
	mux.Handle("GET /analyst/index", IndexHandler{wf})
	mux.Handle("GET /analyst/{id}", GetHandler{wf})
	mux.Handle("POST /analyst/promote/{id}", PromoteHandler{wf})
	mux.Handle("DELETE /analyst/{id}", moderator.RejectHandler{Workflow: wf, Stage: entity.StageAnalyst})
	mux.Handle("GET /rejected", RejectedHandler{wf})

	var create http.Handler = article.CreateHandler{Workflow: wf}
	if submitLimit != nil {
		create = submitLimit(create)
	}
	mux.Handle("POST /analyst", create)
}
