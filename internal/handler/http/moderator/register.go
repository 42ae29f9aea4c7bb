package moderator

import (
	"net/http"

	"speed/internal/domain/entity"
	"speed/internal/usecase/workflow"
)

// Register mounts the moderation routes. Access control is applied by the
// auth middleware around the whole mux.
func Register(mux *http.ServeMux, wf *workflow.Service) {
	mux.Handle("GET /moderator/index", IndexHandler{wf})
	mux.Handle("PUT /moderator/promote/{id}", AcceptHandler{wf})
	mux.Handle("GET /moderator/{id}", GetHandler{wf})
	mux.Handle("PUT /moderator/{id}", UpdateHandler{wf})
	mux.Handle("DELETE /moderator/{id}", RejectHandler{Workflow: wf, Stage: entity.StageModerator})
}
