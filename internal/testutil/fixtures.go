package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalemusser/lessonshop/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateLesson seeds a lesson the way the storefront's seed script does.
func (f *Fixtures) CreateLesson(ctx context.Context, topic, location string, price float64, space int) models.Lesson {
	f.t.Helper()

	lesson := models.Lesson{
		ID:       primitive.NewObjectID(),
		Topic:    topic,
		Location: location,
		Price:    price,
		Space:    space,
		Desc:     topic + " lessons in " + location,
	}
	if _, err := f.db.Collection("lessons").InsertOne(ctx, lesson); err != nil {
		f.t.Fatalf("failed to create test lesson: %v", err)
	}
	return lesson
}

// SeedLessons creates a small catalogue covering text and numeric search.
func (f *Fixtures) SeedLessons(ctx context.Context) []models.Lesson {
	f.t.Helper()
	return []models.Lesson{
		f.CreateLesson(ctx, "Math", "Hendon", 100, 5),
		f.CreateLesson(ctx, "Intro to C++", "Colindale", 90, 3),
		f.CreateLesson(ctx, "Music", "London", 3, 8),
		f.CreateLesson(ctx, "Art", "Brent Cross", 80, 0),
	}
}
