package dto

// ErrorResponse is the uniform failure body returned by every endpoint.
type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// NewErrorResponse builds a failure body carrying a human-readable message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, ErrorMessage: message}
}

// DataResponse wraps pass-through ledger lists as {data: [...]}.
type DataResponse[T any] struct {
	Data T `json:"data"`
}
