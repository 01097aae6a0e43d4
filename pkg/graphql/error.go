package graphql

import (
	"fmt"
	"strings"
)

// ErrorDetail is one entry of a GraphQL response's "errors" list.
type ErrorDetail struct {
	Message    string           `json:"message"`
	Path       []any            `json:"path,omitempty"`
	Locations  []map[string]any `json:"locations,omitempty"`
	Extensions map[string]any   `json:"extensions,omitempty"`
}

// Error is returned when the API answers with a non-empty "errors" list.
type Error struct {
	Errors []ErrorDetail
}

func (e *Error) Error() string {
	switch len(e.Errors) {
	case 0:
		return "GraphQL error occurred"
	case 1:
		return "GraphQL error: " + e.Errors[0].Message
	}
	var b strings.Builder
	b.WriteString("GraphQL errors occurred:")
	for i, d := range e.Errors {
		fmt.Fprintf(&b, "\n%d. %s", i+1, d.Message)
	}
	return b.String()
}

// Messages returns the message of every error in order.
func (e *Error) Messages() []string {
	out := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		out = append(out, d.Message)
	}
	return out
}

// StatusError is returned for non-2xx responses that carry no GraphQL body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Body)
}
