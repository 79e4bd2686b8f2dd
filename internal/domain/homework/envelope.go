package homework

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RemoteError means the service explicitly rejected the request, e.g. a bad
// API token. Persistent until the credentials are fixed.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("service rejected the request: %s", e.Message)
}

// RemoteNotice is an informational code/message body sent instead of a
// homeworks feed. It means "nothing for you this time", not a broken response.
type RemoteNotice struct {
	Code    string
	Message string
}

func (e *RemoteNotice) Error() string {
	return fmt.Sprintf("service notice %s: %s", e.Code, e.Message)
}

// SchemaError means the response body does not match the documented envelope shape.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response schema: %s", e.Reason)
}

// EnvelopeError is the nested error object a rejection body carries.
type EnvelopeError struct {
	Error string `json:"error"`
}

// Envelope is the decoded body of one homework-statuses response. Homeworks
// stays raw until Validate so that a missing key, an explicit null and a
// non-array value can be told apart.
type Envelope struct {
	Homeworks   json.RawMessage `json:"homeworks"`
	CurrentDate int64           `json:"current_date"`
	Error       *EnvelopeError  `json:"error"`
	Code        string          `json:"code"`
	Message     string          `json:"message"`
}

var jsonNull = []byte("null")

// Validate checks the envelope shape and returns the homeworks feed in server
// order (most recent first). An empty or null feed is a valid "no new work"
// state and yields an empty slice. Validate is pure: calling it twice on the
// same envelope gives the same result.
func (e *Envelope) Validate() ([]Homework, error) {
	if e.Error != nil && e.Error.Error != "" {
		return nil, &RemoteError{Message: e.Error.Error}
	}
	if e.Homeworks == nil && e.Code != "" {
		return nil, &RemoteNotice{Code: e.Code, Message: e.Message}
	}
	if e.Homeworks == nil {
		return nil, &SchemaError{Reason: "homeworks field is missing"}
	}
	if bytes.Equal(bytes.TrimSpace(e.Homeworks), jsonNull) {
		return []Homework{}, nil
	}

	var homeworks []Homework
	if err := json.Unmarshal(e.Homeworks, &homeworks); err != nil {
		return nil, &SchemaError{Reason: fmt.Sprintf("homeworks is not a list: %v", err)}
	}
	if homeworks == nil {
		homeworks = []Homework{}
	}
	return homeworks, nil
}
