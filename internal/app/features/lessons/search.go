// internal/app/features/lessons/search.go
package lessons

import (
	"net/http"

	"github.com/dalemusser/lessonshop/internal/app/system/lessonsearch"
	"github.com/dalemusser/lessonshop/internal/app/system/respond"
	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Search handles GET /api/search?q=<term>.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := lessonsearch.Parse(r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "search lessons")
	defer cancel()

	lessons, err := h.Lessons.Find(ctx, q.Filter())
	if err != nil {
		h.Log.Error("search lessons failed", zap.String("q", q.Term), zap.Error(err))
		respond.ServerError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, lessons)
}
