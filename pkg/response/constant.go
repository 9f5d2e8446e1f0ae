package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 1
	ErrorCodeUnauthorized    = 401
	ErrorCodeNotFound        = 404
	ErrorCodeTooManyRequests = 429
	InternalServerErrorCode  = 500

	DateFormat = "2006-01-02"
)
