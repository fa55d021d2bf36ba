package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthorized will throw if the caller could not be authenticated
	ErrUnauthorized = errors.New("missing authentication")
	// ErrForbidden will throw if the caller has no rights over the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrCacheMiss will throw if the key is not in cache
	ErrCacheMiss = errors.New("cache miss")
)

// Error is a failure identified by a structured code, for example
// ADD_COMMENT_USE_CASE.THREAD_NOT_FOUND. The code is what callers match on;
// Err keeps the underlying cause for logging and errors.Is.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps cause (may be nil) under code.
func NewError(code string, cause error) error {
	return &Error{Code: code, Err: cause}
}

// ErrorCode returns the code of the first *Error in err's chain, or "".
func ErrorCode(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// CodeIfNotFound puts err under code when it is an ErrNotFound. Other
// failures, such as a dropped connection, are returned untouched.
func CodeIfNotFound(err error, code string) error {
	if errors.Is(err, ErrNotFound) {
		return NewError(code, err)
	}
	return err
}
