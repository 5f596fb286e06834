// internal/app/features/lessons/handler.go
package lessons

import (
	"context"

	lessonstore "github.com/dalemusser/lessonshop/internal/app/store/lessons"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../../store/storemock/lessons.go -package=storemock -mock_names=Store=MockLessonStore . Store

// Store is the subset of the lesson store used by the handlers.
type Store interface {
	List(ctx context.Context) ([]bson.M, error)
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (lessonstore.PatchResult, error)
}

// Handler serves the lesson listing, search and update endpoints.
type Handler struct {
	Lessons Store
	Log     *zap.Logger
}

func NewHandler(lessons Store, logger *zap.Logger) *Handler {
	return &Handler{
		Lessons: lessons,
		Log:     logger,
	}
}
