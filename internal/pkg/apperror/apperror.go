package apperror

// AppError carries an HTTP status code alongside a user-facing message.
// Domain packages declare their sentinel errors with New; handlers hand
// errors to response.Error which picks the status code from here.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 404, 409)
	Message string // User-facing error message
	Err     error  // Underlying error, if any (not exposed to the client)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
