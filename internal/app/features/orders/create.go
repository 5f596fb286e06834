// internal/app/features/orders/create.go
package orders

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/intake"
	"github.com/dalemusser/lessonshop/internal/app/system/jsonbody"
	"github.com/dalemusser/lessonshop/internal/app/system/respond"
	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"github.com/dalemusser/lessonshop/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createResponse is the stored order plus the id the insert produced.
type createResponse struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
	models.Order
}

// Create handles POST /api/orders.
//
// Success is 201 with the stored document:
//
//	{"insertedId":"…","_id":"…","name":"…","phone":"…","lessonIds":[…],"spaces":n,"createdAt":"…"}
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := jsonbody.Object(w, r)
	if err != nil {
		respond.Error(w, jsonbody.Status(err), err.Error())
		return
	}

	order, err := intake.Normalize(body)
	if err != nil {
		if errors.Is(err, intake.ErrNameAndPhone) || errors.Is(err, intake.ErrLessonsAndSpaces) {
			h.Log.Debug("order rejected", zap.Error(err))
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.ServerError(w, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create order")
	defer cancel()

	stored, err := h.Orders.Create(ctx, order)
	if err != nil {
		h.Log.Error("create order failed", zap.Error(err))
		respond.ServerError(w, err)
		return
	}

	h.Log.Info("order created",
		zap.String("order_id", stored.ID.Hex()),
		zap.Int("lessons", len(stored.LessonIDs)),
		zap.Float64("spaces", float64(stored.Spaces)),
	)
	respond.JSON(w, http.StatusCreated, createResponse{InsertedID: stored.ID, Order: stored})
}
