package generation

import (
	"fmt"
)

// TransportError is a network or non-2xx HTTP failure calling the external
// generation endpoint. The upstream body is kept verbatim for operator
// diagnosis; it is never retried automatically.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation endpoint returned %d: %s", e.StatusCode, e.Body)
}

// EmptyResponseError means the endpoint responded successfully but the
// response contained no text-type content block to extract.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "generation response contained no text content"
}

// MalformedJSONError means the extracted response text did not decode as
// JSON. It carries the parse error and the offending text so operators can
// tell "the model refused" apart from "the model's output didn't parse".
type MalformedJSONError struct {
	Err  error
	Text string
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("generation output is not valid JSON: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// TruncatedError means the response hit the output token ceiling. Parsing
// the truncated body is pointless; the remedy is splitting the request into
// smaller batches, so the message says so explicitly.
type TruncatedError struct {
	MaxTokens int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("generation response truncated at the %d token limit; the input is too large for one request", e.MaxTokens)
}
