package httputil

// Machine-readable error codes returned alongside the error message.
// Clients should branch on these rather than on message text.
const (
	CodeValidationFailed   = "validation_failed"
	CodeInvalidRequestBody = "invalid_request_body"
	CodeEmailRegistered    = "email_registered"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAccessDenied       = "access_denied"
	CodeInvalidToken       = "invalid_token"
	CodeProductNotFound    = "product_not_found"
	CodeTooManyRequests    = "too_many_requests"
	CodeInternalError      = "internal_error"
)
