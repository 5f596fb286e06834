// internal/app/store/orders/orderstore.go
package orderstore

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the orders collection name.
const Collection = "orders"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts o, assigning its ID and CreatedAt.
func (s *Store) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now().UTC().Truncate(time.Millisecond) // BSON dates hold milliseconds
	if o.LessonIDs == nil {
		o.LessonIDs = []string{}
	}

	if _, err := s.c.InsertOne(ctx, o); err != nil {
		return models.Order{}, errors.Wrap(err, "insert order")
	}
	return o, nil
}

// GetByID returns an order by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var o models.Order
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// Count returns the number of orders matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
