package client

import "fmt"

// HTTPError reports a non-2xx response from the draw API. The run is aborted
// on the first one; 403 (rate limiting) is deliberately not distinguished
// from any other status.
type HTTPError struct {
	StatusCode int
	Status     string
	Snippet    string // first bodySnippetLen bytes of the response body
}

func (e *HTTPError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("draw API returned HTTP %d: %s", e.StatusCode, e.Snippet)
	}
	return fmt.Sprintf("draw API returned HTTP %d: %s", e.StatusCode, e.Status)
}

// GetStatusCode exposes the status code for callers that branch on it.
func (e *HTTPError) GetStatusCode() int {
	return e.StatusCode
}

// EnvelopeError reports a response in which no draw list could be located
// under any of the known envelope shapes. It keeps the full payload so the
// new shape can be inspected.
type EnvelopeError struct {
	Payload []byte
	Err     error
}

func (e *EnvelopeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no draw list found in API response: %v", e.Err)
	}
	return "no draw list found in API response"
}

func (e *EnvelopeError) Unwrap() error {
	return e.Err
}
