package authchain

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// UserLookup resolves a username to a user identity. Returning a nil
// user with a nil error means no match; errors signal lookup
// infrastructure failures, not bad credentials.
type UserLookup func(ctx context.Context, username string) (*User, error)

// SecretSource yields the shared secret used to sign and verify tokens.
// The source runs at most once; its outcome is cached for the life of
// the process.
type SecretSource func(ctx context.Context) ([]byte, error)

// StaticSecret wraps an immediate secret value.
func StaticSecret(secret string) SecretSource {
	return func(context.Context) ([]byte, error) {
		return []byte(secret), nil
	}
}

// SecretBytes wraps an immediate binary secret.
func SecretBytes(secret []byte) SecretSource {
	return func(context.Context) ([]byte, error) {
		return secret, nil
	}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
