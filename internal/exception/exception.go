// Package exception turns coded domain failures into errors fit for clients.
package exception

import (
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// Kind is the externally visible class of a client error.
type Kind int

const (
	KindInvariant Kind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvariant:
		return "InvariantError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindNotFound:
		return "NotFoundError"
	default:
		return "UnknownError"
	}
}

// ClientError is a failure caused by the request, with a message safe to show.
type ClientError struct {
	Kind    Kind
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

func NewInvariantError(msg string) *ClientError {
	return &ClientError{Kind: KindInvariant, Message: msg}
}

func NewAuthenticationError(msg string) *ClientError {
	return &ClientError{Kind: KindAuthentication, Message: msg}
}

func NewAuthorizationError(msg string) *ClientError {
	return &ClientError{Kind: KindAuthorization, Message: msg}
}

func NewNotFoundError(msg string) *ClientError {
	return &ClientError{Kind: KindNotFound, Message: msg}
}

// Translate maps a coded domain error to its ClientError. Anything it does
// not know is returned unchanged.
func Translate(err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		return err
	}
	known, ok := directory[de.Code]
	if !ok {
		return err
	}
	translated := known
	return &translated
}
