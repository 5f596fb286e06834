// Package jsonbody decodes request bodies that are expected to be JSON
// objects.
package jsonbody

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/limits"
)

// MaxBytes caps request bodies.
const MaxBytes = limits.MaxJSONBodySize

var (
	// ErrInvalid is returned for bodies that are not valid JSON.
	ErrInvalid = errors.New("invalid JSON body")

	// ErrTooLarge is returned for bodies over MaxBytes.
	ErrTooLarge = errors.New("request body too large")
)

// Object decodes the request body into a map. An empty body, or a JSON value
// that is not an object, yields an empty map.
func Object(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, ErrTooLarge
		}
		return nil, errors.Wrap(err, "read body")
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, ErrInvalid
	}
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return m, nil
}

// Status maps an Object error to the HTTP status to report.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
