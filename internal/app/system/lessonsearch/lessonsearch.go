// Package lessonsearch turns the storefront's single search term into a
// lessons filter.
//
// The term is matched as a literal, case-insensitive substring of a lesson's
// topic or location. When the term also reads as a finite number, lessons
// whose price or space equal that number match as well.
package lessonsearch

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/coerce"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmptyTerm is returned when the search term is blank after trimming.
var ErrEmptyTerm = errors.New("q is required")

// Query is a parsed search term.
type Query struct {
	Term string // trimmed input

	// Number holds the numeric reading of Term, or nil when Term is not a
	// finite number.
	Number *float64
}

// Parse trims raw and decides whether it also carries a numeric reading.
func Parse(raw string) (Query, error) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return Query{}, ErrEmptyTerm
	}
	q := Query{Term: term}
	if n, ok := coerce.FiniteNumber(term); ok {
		q.Number = &n
	}
	return q, nil
}

// Escape backslash-escapes every character of . * + ? ^ $ { } ( ) | [ ] \
// so the term matches literally.
func Escape(term string) string {
	// QuoteMeta's set is exactly the list above.
	return regexp.QuoteMeta(term)
}

// Filter builds the $or filter for q.
func (q Query) Filter() bson.M {
	re := primitive.Regex{Pattern: Escape(q.Term), Options: "i"}
	clauses := bson.A{
		bson.M{"topic": re},
		bson.M{"location": re},
	}
	if q.Number != nil {
		clauses = append(clauses,
			bson.M{"price": *q.Number},
			bson.M{"space": *q.Number},
		)
	}
	return bson.M{"$or": clauses}
}
