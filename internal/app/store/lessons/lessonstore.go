// internal/app/store/lessons/lessonstore.go
package lessonstore

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the lessons collection name.
const Collection = "lessons"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// PatchResult reports the outcome of a partial update. A no-op update (every
// value already equal) is matched but not modified.
type PatchResult struct {
	Matched  int64
	Modified int64
}

// List returns every lesson in store-native order.
func (s *Store) List(ctx context.Context) ([]bson.M, error) {
	return s.Find(ctx, bson.M{})
}

// Find returns lessons matching filter, never nil. Documents are returned as
// stored, including fields outside models.Lesson; embedded documents decode
// as bson.M.
func (s *Store) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find lessons")
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode lessons")
	}
	return out, nil
}

// Patch applies $set to the lesson with the given id. Callers are expected to
// have restricted set to models.LessonMutableFields.
func (s *Store) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (PatchResult, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return PatchResult{}, errors.Wrapf(err, "update lesson %s", id.Hex())
	}
	return PatchResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// GetByID returns a lesson document by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
