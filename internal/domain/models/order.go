// internal/domain/models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a customer's request for space across one or more lessons.
//
// Orders are insert-only. LessonIDs are not checked against the lessons
// collection, so an order may reference a lesson that no longer exists.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Phone     string             `bson:"phone" json:"phone" validate:"required"`
	LessonIDs []string           `bson:"lessonIds" json:"lessonIds"`
	Spaces    Quantity           `bson:"spaces" json:"spaces" validate:"finite"` // total units across all lessons
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
