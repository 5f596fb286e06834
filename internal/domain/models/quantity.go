// internal/domain/models/quantity.go
package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Quantity is a client-supplied count of lesson spaces. Any finite JSON
// number is accepted, fractional values included.
type Quantity float64

// MarshalBSONValue stores whole quantities as int32 and the rest as double.
func (q Quantity) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(StoredNumber(float64(q)))
}

// StoredNumber returns f as an int32 when it is integral and fits, matching
// the representation of seeded lesson data, and as a float64 otherwise.
func StoredNumber(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
		return int32(f)
	}
	return f
}
