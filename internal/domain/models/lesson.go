// internal/domain/models/lesson.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is a bookable offering shown in the storefront.
//
// Lessons are seeded out of band; this service only reads them and applies
// partial updates to the mutable fields (see LessonMutableFields).
type Lesson struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Topic    string             `bson:"topic" json:"topic"`
	Price    float64            `bson:"price" json:"price"`
	Location string             `bson:"location" json:"location"`
	Space    int                `bson:"space" json:"space"` // remaining bookable capacity

	Desc  string `bson:"desc,omitempty" json:"desc,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"` // file name under /images/lessons/
}

// LessonMutableFields lists the only lesson fields that may change after
// creation. Keys are the stored field names.
var LessonMutableFields = map[string]struct{}{
	"topic":    {},
	"price":    {},
	"location": {},
	"space":    {},
	"desc":     {},
}
