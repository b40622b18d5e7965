package authchain

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeAuthFailed = "AUTHENTICATION_FAILED"
	textCodeJWTSign    = "JWT_SIGN_ERROR"
)

// ErrNoSecret is returned when no secret source was supplied, or when
// the supplied source resolves to an empty secret at first use.
var ErrNoSecret = goerrors.New("no secret set", goerrors.CategoryBadInput)

// ErrNoUserLookup is returned when no user lookup capability was
// supplied at construction.
var ErrNoUserLookup = goerrors.New("no user lookup set", goerrors.CategoryBadInput)

// NewAuthenticationError builds the recoverable failure every credential
// stage and gate reports. An empty message renders as "Unauthorized".
func NewAuthenticationError(message string) *goerrors.Error {
	if message == "" {
		message = "Unauthorized"
	}
	return goerrors.New(message, goerrors.CategoryAuth).
		WithTextCode(textCodeAuthFailed).
		WithCode(goerrors.CodeUnauthorized)
}

// IsAuthenticationError reports whether err should render as a 401
// through the Unauthorized responder.
func IsAuthenticationError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.Category == goerrors.CategoryAuth || rich.Category == goerrors.CategoryAuthz
}

// NewTokenSigningError tags a signing failure so hosts can tell a broken
// signing configuration apart from a bad credential. It is deliberately
// not an authentication error.
func NewTokenSigningError(err error) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign JWT").
		WithTextCode(textCodeJWTSign)
}

// IsTokenSigningError reports whether err came out of the signing path.
func IsTokenSigningError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == textCodeJWTSign
}

func errorMessage(err error) string {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.Message != "" {
		return rich.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Unauthorized"
}
