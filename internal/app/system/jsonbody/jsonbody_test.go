package jsonbody_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/lessonshop/internal/app/system/jsonbody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{"empty", "", map[string]any{}},
		{"object", `{"space":3,"topic":"Art"}`, map[string]any{"space": float64(3), "topic": "Art"}},
		{"array", `[1,2]`, map[string]any{}},
		{"null", `null`, map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			got, err := jsonbody.Object(httptest.NewRecorder(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObject_Invalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{invalid json}`))
	_, err := jsonbody.Object(httptest.NewRecorder(), req)
	assert.ErrorIs(t, err, jsonbody.ErrInvalid)
	assert.Equal(t, http.StatusBadRequest, jsonbody.Status(err))
}

func TestObject_TooLarge(t *testing.T) {
	big := `{"desc":"` + strings.Repeat("a", jsonbody.MaxBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	_, err := jsonbody.Object(httptest.NewRecorder(), req)
	assert.ErrorIs(t, err, jsonbody.ErrTooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, jsonbody.Status(err))
}
