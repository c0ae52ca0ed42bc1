// Package graphqlutil surfaces GraphQL error responses as Go errors.
package graphqlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Error kinds reported by GitHub in the "type" field of a GraphQL error.
// Match them with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrUnprocessable = errors.New("unprocessable")
)

// WrapTransport wraps an HTTP transport so that responses
// carrying a GraphQL "errors" array fail the round trip
// with an [Errors] value.
//
// The GraphQL client we use flattens these errors into strings,
// losing the "type" field.
func WrapTransport(t http.RoundTripper) http.RoundTripper {
	if t == nil {
		t = http.DefaultTransport
	}
	return &transport{next: t}
}

type transport struct{ next http.RoundTripper }

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(req)
	if err != nil || res.StatusCode != http.StatusOK {
		return res, err
	}

	body, readErr := io.ReadAll(res.Body)
	if err := errors.Join(readErr, res.Body.Close()); err != nil {
		return nil, fmt.Errorf("read GraphQL response: %w", err)
	}
	res.Body = io.NopCloser(bytes.NewReader(body))

	if errs := parseErrors(body); len(errs) > 0 {
		return nil, errs
	}
	return res, nil
}

func parseErrors(body []byte) Errors {
	if !gjson.ValidBytes(body) {
		return nil
	}

	result := gjson.GetBytes(body, "errors")
	if !result.IsArray() {
		return nil
	}

	var errs Errors
	for _, item := range result.Array() {
		if !item.IsObject() {
			continue
		}

		e := &Error{
			Message: item.Get("message").String(),
			Type:    item.Get("type").String(),
		}
		for _, p := range item.Get("path").Array() {
			e.Path = append(e.Path, p.String())
		}
		errs = append(errs, e)
	}
	return errs
}

// Errors is the list of errors in a single GraphQL response.
type Errors []*Error

func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Error is a single GraphQL error.
type Error struct {
	Message string
	Type    string   // e.g. NOT_FOUND
	Path    []string // e.g. ["repository", "pullRequest"]
}

// Is matches against ErrNotFound, ErrForbidden, and ErrUnprocessable.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Type == "NOT_FOUND"
	case ErrForbidden:
		return e.Type == "FORBIDDEN"
	case ErrUnprocessable:
		return e.Type == "UNPROCESSABLE"
	default:
		return false
	}
}

func (e *Error) Error() string {
	var s strings.Builder
	if len(e.Path) > 0 {
		s.WriteString(strings.Join(e.Path, "."))
		s.WriteString(": ")
	}
	if e.Type != "" {
		s.WriteString(e.Type)
		s.WriteString(": ")
	}
	s.WriteString(e.Message)
	return s.String()
}
