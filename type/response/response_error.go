package response

// Error code strings carried alongside the HTTP status so clients can branch
// without string-matching messages.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Success bool    `json:"success"`
	Code    string  `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
}

func Error(msg any) *ErrorResponse {
	if message, ok := msg.(string); ok {
		return &ErrorResponse{
			Success: false,
			Message: &message,
		}
	}
	unknown := "Unknown Error"
	return &ErrorResponse{
		Success: false,
		Message: &unknown,
	}
}

// ErrorWithCode builds an error envelope with a machine-readable code and
// optional payload (e.g. a list of missing IDs).
func ErrorWithCode(code string, msg string, data ...any) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Code:    code,
		Message: &msg,
	}
	if len(data) > 0 {
		response.Data = data[0]
	}
	return response
}
