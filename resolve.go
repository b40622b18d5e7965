package authchain

import (
	"context"
	"sync"
	"time"
)

// secretCell resolves the signing secret once and caches the outcome,
// value or error, for the life of the process. Safe for concurrent use;
// downstream callers read the cached value without coordination.
type secretCell struct {
	source SecretSource
	once   sync.Once
	value  []byte
	err    error
}

func newSecretCell(source SecretSource) *secretCell {
	return &secretCell{source: source}
}

func (c *secretCell) resolve(ctx context.Context) ([]byte, error) {
	c.once.Do(func() {
		c.value, c.err = c.source(ctx)
		if c.err == nil && len(c.value) == 0 {
			c.err = ErrNoSecret
		}
	})
	return c.value, c.err
}

// Optionally-dynamic configuration fields are provider functions; a
// constant is wrapped once by a Static* constructor instead of being
// type-inspected at every call site.

// StringClaim derives a string claim (iss, sub) from the current user.
type StringClaim func(u *User) (string, error)

// StringsClaim derives a string-list claim (aud) from the current user.
type StringsClaim func(u *User) ([]string, error)

// TimeClaim derives a time claim (exp) from the current user.
type TimeClaim func(u *User) (time.Time, error)

// UserFilter derives the identity embedded in responses and tokens.
type UserFilter func(u *User) *User

// UserDecoder recovers a user identity from verified token claims. A
// nil user means the token carries no usable identity.
type UserDecoder func(claims *TokenClaims) (*User, error)

// PasswordComparer checks a supplied password against a looked-up user.
type PasswordComparer func(ctx context.Context, u *User, password string) (bool, error)

// StaticString wraps a constant string claim value.
func StaticString(v string) StringClaim {
	return func(*User) (string, error) { return v, nil }
}

// StaticStrings wraps a constant audience list.
func StaticStrings(v ...string) StringsClaim {
	return func(*User) ([]string, error) { return v, nil }
}

// StaticTime wraps a constant expiry instant.
func StaticTime(t time.Time) TimeClaim {
	return func(*User) (time.Time, error) { return t, nil }
}

// ExpiresIn derives the expiry relative to the moment of issuance.
func ExpiresIn(d time.Duration) TimeClaim {
	return func(*User) (time.Time, error) { return time.Now().Add(d), nil }
}
