package models_test

import (
	"testing"

	"github.com/dalemusser/lessonshop/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStoredNumber(t *testing.T) {
	assert.Equal(t, int32(5), models.StoredNumber(5))
	assert.Equal(t, int32(-2), models.StoredNumber(-2))
	assert.Equal(t, 2.5, models.StoredNumber(2.5))
	assert.Equal(t, 1e30, models.StoredNumber(1e30))
	assert.Equal(t, float64(1<<31), models.StoredNumber(1<<31))
}

func TestQuantity_BSON(t *testing.T) {
	tests := []struct {
		in   models.Quantity
		want any
	}{
		{5, int32(5)},
		{2.5, 2.5},
		{1e30, 1e30},
	}
	for _, tt := range tests {
		raw, err := bson.Marshal(bson.M{"spaces": tt.in})
		require.NoError(t, err)

		var doc bson.M
		require.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, tt.want, doc["spaces"])

		var back struct {
			Spaces models.Quantity `bson:"spaces"`
		}
		require.NoError(t, bson.Unmarshal(raw, &back))
		assert.Equal(t, tt.in, back.Spaces)
	}
}
