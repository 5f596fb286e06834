// internal/app/features/lessons/list.go
package lessons

import (
	"net/http"

	"github.com/dalemusser/lessonshop/internal/app/system/respond"
	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// List handles GET /api/lessons: every lesson, unfiltered and unsorted.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list lessons")
	defer cancel()

	lessons, err := h.Lessons.List(ctx)
	if err != nil {
		h.Log.Error("list lessons failed", zap.Error(err))
		respond.ServerError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, lessons)
}
