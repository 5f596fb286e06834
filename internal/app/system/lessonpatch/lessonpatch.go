// Package lessonpatch filters a partial lesson update down to the mutable
// lesson fields.
package lessonpatch

import (
	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoValidFields is returned when nothing is left after filtering.
var ErrNoValidFields = errors.New("No valid fields to update")

// Build returns the $set document for body. Keys outside
// models.LessonMutableFields are dropped without error; the remaining values
// are applied as sent. JSON numbers go through models.StoredNumber so whole
// values keep the int32 type the seed data uses.
func Build(body map[string]any) (bson.M, error) {
	set := bson.M{}
	for key, v := range body {
		if _, ok := models.LessonMutableFields[key]; !ok {
			continue
		}
		if f, ok := v.(float64); ok {
			v = models.StoredNumber(f)
		}
		set[key] = v
	}
	if len(set) == 0 {
		return nil, ErrNoValidFields
	}
	return set, nil
}
