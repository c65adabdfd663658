package errors

import "errors"

// UserMessage returns the single human-readable message shown for a failed
// attempt. Callers must never surface raw provider error codes; everything
// funnels through this table.
func UserMessage(err error) string {
	switch CodeOf(err) {
	case ErrCodeValidation:
		var appErr *AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			return appErr.Message
		}
		return "Please check your input and try again"
	case ErrCodeAccountNotFound:
		return "No registered admin account found with this email"
	case ErrCodeInvalidCredential:
		return "Incorrect password"
	case ErrCodeRateLimited:
		return "Too many failed attempts. Please try again later"
	case ErrCodeDomainNotAllowed:
		return "Access denied: your email domain is not authorized"
	case ErrCodeServiceUnavailable:
		return "Service temporarily unavailable. Please try again"
	case ErrCodeNotFound:
		return "Resource not found"
	case ErrCodeConflict:
		return "This value already exists"
	case ErrCodeUnauthenticated:
		return "Authentication required"
	default:
		return "Authentication failed. Please check your credentials"
	}
}

// HTTPStatus maps an error code to the HTTP status used at the API boundary.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrCodeValidation:
		return 400
	case ErrCodeAccountNotFound, ErrCodeInvalidCredential, ErrCodeUnauthenticated:
		return 401
	case ErrCodeDomainNotAllowed:
		return 403
	case ErrCodeNotFound:
		return 404
	case ErrCodeConflict:
		return 409
	case ErrCodeRateLimited:
		return 429
	case ErrCodeServiceUnavailable:
		return 503
	default:
		return 500
	}
}
