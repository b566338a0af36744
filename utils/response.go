package utils

// The client contract uses flat payloads: success bodies are the
// resource shapes themselves, failures carry an "error" field and
// informational results a "message" field. Callers unwrap in that
// order, so these two envelopes are the whole error surface.

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the envelope for mutations whose only result is a
// human-readable confirmation.
type StatusResponse struct {
	Message string `json:"message"`
}
