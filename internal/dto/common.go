package dto

// APIResponse is the envelope used by all JSON endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail wraps an error message in a failure envelope.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}
