package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Failed to load dashboard data"`
}

// NewErrorResponse builds a failed response carrying msg.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
