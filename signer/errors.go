package signer

// ErrorKind classifies an AuthError so callers can map it to a transport
// status (typically 401/403) without string-matching Error().
// Reference: spec.md §7.
type ErrorKind int

const (
	ErrNotSigned ErrorKind = iota
	ErrMalformedHeader
	ErrMissingParam
	ErrBadCredentialScope
	ErrMissingHost
	ErrMissingDateHeader
	ErrBadDate
	ErrDateMismatch
	ErrOutsideWindow
	ErrHostMismatch
	ErrWrongScope
	ErrUnknownKey
	ErrBadAlgorithm
	ErrHostNotSigned
	ErrDateNotSigned
	ErrSignatureMismatch
)

// AuthError is the single error type every verification failure
// surfaces as. Its Message is a literal contract with callers (spec.md
// §7) and must not be altered by wrapping.
type AuthError struct {
	Kind    ErrorKind
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func newAuthError(kind ErrorKind, message string) *AuthError {
	return &AuthError{Kind: kind, Message: message}
}

// The exact messages of spec.md §7, reproduced letter for letter.
func errNotSigned() *AuthError { return newAuthError(ErrNotSigned, "Request has not been signed.") }

func errMalformedHeader() *AuthError {
	return newAuthError(ErrMalformedHeader, "Could not parse authorization header.")
}

func errBadCredentialScope() *AuthError {
	return newAuthError(ErrBadCredentialScope, "Invalid credential scope")
}

func errMissingHost() *AuthError { return newAuthError(ErrMissingHost, "The Host header is missing") }

func errBadDate() *AuthError { return newAuthError(ErrBadDate, "Invalid request date.") }

func errDateMismatch() *AuthError {
	return newAuthError(ErrDateMismatch, "The request date and credential date do not match.")
}

func errOutsideWindow() *AuthError {
	return newAuthError(ErrOutsideWindow, "Request date is not within the accepted time interval.")
}

func errHostMismatch() *AuthError {
	return newAuthError(ErrHostMismatch, "The host header does not match.")
}

func errWrongScope() *AuthError { return newAuthError(ErrWrongScope, "Invalid credentials") }

func errUnknownKey() *AuthError { return newAuthError(ErrUnknownKey, "Invalid access key id") }

func errBadAlgorithm() *AuthError {
	return newAuthError(ErrBadAlgorithm, "Only SHA256 and SHA512 hash algorithms are allowed.")
}

func errHostNotSigned() *AuthError { return newAuthError(ErrHostNotSigned, "Host header not signed") }

func errDateNotSigned() *AuthError { return newAuthError(ErrDateNotSigned, "Date header not signed") }

func errSignatureMismatch() *AuthError {
	return newAuthError(ErrSignatureMismatch, "The signatures do not match")
}

func errMissingParam(key string) *AuthError {
	return newAuthError(ErrMissingParam, "Missing query parameter: "+key)
}

func errMissingDateHeader(dateHeaderName string) *AuthError {
	return newAuthError(ErrMissingDateHeader, "The "+dateHeaderName+" header is missing")
}
