package authchain

import (
	"context"
	"crypto/subtle"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// PlainCompare is the default PasswordComparer: constant-time equality
// of the supplied password against the user's credential field.
func PlainCompare(_ context.Context, user *User, password string) (bool, error) {
	if user == nil {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(user.Pass), []byte(password)) == 1, nil
}

// BcryptCompare is a PasswordComparer for users whose Pass field holds
// a bcrypt hash instead of a plaintext credential.
func BcryptCompare(_ context.Context, user *User, password string) (bool, error) {
	if user == nil {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.Pass), []byte(password))
	if err == nil {
		return true, nil
	}
	if goerrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// HashPassword generates a bcrypt hash suitable for BcryptCompare.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", goerrors.New("password must not be empty", goerrors.CategoryBadInput)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(h), err
}
