// Package intake normalizes the two order payload shapes accepted by the
// storefront into one models.Order.
//
// A body either carries lessonIds and spaces directly, or an items list of
// {lessonId, qty} pairs from which both are derived. A non-empty items list
// always wins over directly supplied values.
package intake

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/coerce"
	"github.com/dalemusser/lessonshop/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrNameAndPhone is returned when name or phone is missing or falsy.
	ErrNameAndPhone = errors.New("name and phone are required")

	// ErrLessonsAndSpaces is returned when the normalized body lacks a
	// lessonIds array or a finite numeric spaces value.
	ErrLessonsAndSpaces = errors.New("lessonIds(Array) and spaces(Number) are required")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// finite rejects NaN and ±Inf, which JSON cannot represent.
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(err)
	}
	return v
}

// Normalize validates body and returns the order to store. ID and CreatedAt
// are left for the store to assign.
func Normalize(body map[string]any) (models.Order, error) {
	order := models.Order{
		Name:  identity(body["name"]),
		Phone: identity(body["phone"]),
	}
	if err := validate.StructPartial(order, "Name", "Phone"); err != nil {
		return models.Order{}, ErrNameAndPhone
	}

	if items, ok := body["items"].([]any); ok && len(items) > 0 {
		order.LessonIDs, order.Spaces = fromItems(items)
	} else {
		ids, ok := stringSlice(body["lessonIds"])
		if !ok {
			return models.Order{}, ErrLessonsAndSpaces
		}
		n, ok := body["spaces"].(float64)
		if !ok {
			return models.Order{}, ErrLessonsAndSpaces
		}
		order.LessonIDs, order.Spaces = ids, models.Quantity(n)
	}

	// A sum of large item quantities can overflow to +Inf.
	if err := validate.StructPartial(order, "Spaces"); err != nil {
		return models.Order{}, ErrLessonsAndSpaces
	}
	return order, nil
}

// fromItems derives lessonIds and the total space count. Items without a
// truthy lessonId and qty are skipped.
func fromItems(items []any) ([]string, models.Quantity) {
	ids := make([]string, 0, len(items))
	var total float64
	for _, raw := range items {
		it, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		lessonID, qty := it["lessonId"], it["qty"]
		if !coerce.Truthy(lessonID) || !coerce.Truthy(qty) {
			continue
		}
		id, ok := coerce.String(lessonID)
		if !ok {
			continue
		}
		ids = append(ids, id)
		if n, ok := coerce.FiniteNumber(qty); ok {
			total += n
		}
	}
	return ids, models.Quantity(total)
}

// identity reads name/phone values. Numbers are accepted since phone numbers
// often arrive unquoted; falsy values read as "".
func identity(v any) string {
	if !coerce.Truthy(v) {
		return ""
	}
	switch v.(type) {
	case string, float64:
		s, _ := coerce.String(v)
		return s
	}
	return ""
}

func stringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
