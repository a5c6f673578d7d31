package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error"`
}
