package models

import "encoding/json"

// CodeOK is the application-level success code carried in [Envelope.Code].
// Any other value means the backend rejected the call, even when the HTTP
// status itself is 200.
const CodeOK = 200

// Envelope is the wrapper the QA backend puts around every response body.
type Envelope struct {
	// Code is the application status code. Only [CodeOK] means success.
	Code int `json:"code"`

	// Message is a human-readable description of the outcome. On failure it is
	// the text shown to the user.
	Message string `json:"message"`

	// Data holds the operation payload. It is decoded lazily by the caller
	// into the concrete response type.
	Data json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the envelope carries the success code.
func (e Envelope) OK() bool {
	return e.Code == CodeOK
}

// HasData reports whether the envelope carries a non-null payload.
func (e Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}
