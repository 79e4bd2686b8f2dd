package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

// TransportError is a network-level failure: the request never produced an
// HTTP response (connection refused, timeout, DNS, TLS).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("homework statuses request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusError means the service answered with a non-200 HTTP status.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("homework statuses endpoint answered with status %d", e.Code)
}

// DecodeError means a 200 response carried a body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode homework statuses response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HTTPClient fetches the homework statuses feed over HTTP.
type HTTPClient struct {
	endpoint string
	token    string
	timeout  time.Duration
	client   *http.Client
}

func NewHTTPClient(endpoint, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

// Fetch requests every homework whose status changed since the given Unix
// timestamp and returns the decoded envelope. Field validation is the
// envelope's job; retrying is the caller's. Each call is bounded by the
// configured timeout.
func (c *HTTPClient) Fetch(ctx context.Context, since int64) (*homework.Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(since, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnexpectedStatusError{Code: resp.StatusCode}
	}

	var envelope homework.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &envelope, nil
}
