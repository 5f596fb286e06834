// internal/app/features/lessons/update.go
package lessons

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/jsonbody"
	"github.com/dalemusser/lessonshop/internal/app/system/lessonpatch"
	"github.com/dalemusser/lessonshop/internal/app/system/respond"
	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateResponse struct {
	OK            bool  `json:"ok"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Update handles PUT /api/lessons/{id}. Only the mutable lesson fields in the
// body are applied, with their values as sent; everything else is dropped.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid lesson id")
		return
	}

	body, err := jsonbody.Object(w, r)
	if err != nil {
		respond.Error(w, jsonbody.Status(err), err.Error())
		return
	}

	set, err := lessonpatch.Build(body)
	if err != nil {
		if errors.Is(err, lessonpatch.ErrNoValidFields) {
			h.Log.Debug("lesson update rejected", zap.String("lesson_id", id.Hex()), zap.Error(err))
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.ServerError(w, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update lesson")
	defer cancel()

	res, err := h.Lessons.Patch(ctx, id, set)
	if err != nil {
		h.Log.Error("update lesson failed", zap.String("lesson_id", id.Hex()), zap.Error(err))
		respond.ServerError(w, err)
		return
	}
	if res.Matched == 0 {
		respond.Error(w, http.StatusNotFound, "Lesson not found")
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{
		OK:            true,
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
	})
}
