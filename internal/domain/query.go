package domain

import (
	"errors"
	"strings"
)

// ErrEmptyQuery is returned for empty or whitespace-only city input.
var ErrEmptyQuery = errors.New("empty city query")

// Query is a trimmed, non-empty city name.
type Query string

// ParseQuery trims raw user input and rejects it if nothing is left.
func ParseQuery(raw string) (Query, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return Query(q), nil
}

func (q Query) String() string { return string(q) }
