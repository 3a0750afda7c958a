package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Kind classifies a normalized backend failure.
type Kind int

const (
	// KindNetwork means no response was received at all (including timeouts).
	KindNetwork Kind = iota
	// KindAuth covers 401/403; the session has been invalidated.
	KindAuth
	// KindValidation is a 4xx carrying a list of field-level messages.
	KindValidation
	// KindBusiness is any other backend failure with a single message.
	KindBusiness
)

// Error is the single normalized error shape produced by the pipeline.
// The backend's message field can be either a string or a list of strings;
// both collapse into Messages so callers handle one shape only.
type Error struct {
	Kind       Kind
	StatusCode int
	Messages   []string
	Reason     string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return "request failed"
	}
	return strings.Join(e.Messages, "; ")
}

// Message returns the first (often only) message, matching how login and
// register surface backend failures.
func (e *Error) Message() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

// wireError mirrors the backend error body. Message is raw because its
// shape varies between a string and a list of validation messages.
type wireError struct {
	StatusCode int             `json:"statusCode"`
	Message    json.RawMessage `json:"message"`
	Err        string          `json:"error"`
}

func networkError() *Error {
	return &Error{
		Kind:       KindNetwork,
		StatusCode: 0,
		Messages:   []string{"Network error. Please check your internet connection."},
		Reason:     "Network Error",
	}
}

// normalizeError converts a non-2xx response body into an Error. A message
// list marks the error as validation; 401/403 are auth regardless of body.
func normalizeError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode}

	var we wireError
	if err := json.Unmarshal(body, &we); err == nil && len(we.Message) > 0 {
		var single string
		var many []string
		switch {
		case json.Unmarshal(we.Message, &single) == nil:
			e.Messages = []string{single}
		case json.Unmarshal(we.Message, &many) == nil:
			e.Messages = many
			e.Kind = KindValidation
		}
		e.Reason = we.Err
	}

	if len(e.Messages) == 0 {
		e.Messages = []string{http.StatusText(statusCode)}
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		e.Kind = KindAuth
	case e.Kind == KindValidation:
	default:
		e.Kind = KindBusiness
	}

	return e
}
