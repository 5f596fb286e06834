package orderstore_test

import (
	"testing"

	orderstore "github.com/dalemusser/lessonshop/internal/app/store/orders"
	"github.com/dalemusser/lessonshop/internal/domain/models"
	"github.com/dalemusser/lessonshop/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orderstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Order{
		Name:      "Ada",
		Phone:     "0123",
		LessonIDs: []string{"a", "b"},
		Spaces:    5,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Ada" || got.Phone != "0123" || got.Spaces != 5 {
		t.Errorf("stored order mismatch: %+v", got)
	}
	if len(got.LessonIDs) != 2 || got.LessonIDs[0] != "a" || got.LessonIDs[1] != "b" {
		t.Errorf("lessonIds: got %v", got.LessonIDs)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt: got %v, want %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestStore_Create_EmptyLessonIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orderstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Order{Name: "Ada", Phone: "0123"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Stored as an empty array, never null.
	n, err := store.Count(ctx, bson.M{"_id": created.ID, "lessonIds": bson.M{"$size": 0}})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected lessonIds to be stored as []")
	}
}

func TestStore_Count(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orderstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, models.Order{Name: "Ada", Phone: "0123", Spaces: models.Quantity(i)}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 orders, got %d", n)
	}
}

func TestStore_Create_SpacesEncoding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orderstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		spaces models.Quantity
		want   any
	}{
		{5, int32(5)},
		{2.5, 2.5},
		{1e30, 1e30},
	}
	for _, tt := range tests {
		created, err := store.Create(ctx, models.Order{Name: "Ada", Phone: "0123", Spaces: tt.spaces})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		var raw bson.M
		if err := db.Collection(orderstore.Collection).FindOne(ctx, bson.M{"_id": created.ID}).Decode(&raw); err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if raw["spaces"] != tt.want {
			t.Errorf("spaces %v: stored %v (%T), want %v (%T)", tt.spaces, raw["spaces"], raw["spaces"], tt.want, tt.want)
		}

		got, err := store.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Spaces != tt.spaces {
			t.Errorf("spaces: read back %v, want %v", got.Spaces, tt.spaces)
		}
	}
}
