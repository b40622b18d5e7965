package authchain

import (
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-router"
)

var routePattern = regexp.MustCompile(`^/`)

// TokenOptions controls claim population and decode of issued tokens.
// Every field is optional.
type TokenOptions struct {
	// Filter derives the identity embedded in the user claim. Defaults
	// to User.Redacted.
	Filter UserFilter
	// Decode recovers the user from verified claims. Defaults to the
	// user claim, falling back to the issuer name.
	Decode UserDecoder
	// Exp, Iss, Sub, and Aud populate the matching registered claims
	// when set. Use the Static* constructors for constants.
	Exp TimeClaim
	Iss StringClaim
	Sub StringClaim
	Aud StringsClaim
	// Cookie names an optional cookie carrying the token, checked when
	// no bearer header is present.
	Cookie string
}

// LoginOptions locates the token-issuing endpoint.
type LoginOptions struct {
	Path   string
	Method string
}

// Validate checks the login route shape.
func (o LoginOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Path, validation.Match(routePattern)),
		validation.Field(&o.Method, validation.In(
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		)),
	)
}

// LogoutOptions locates the logout endpoint. Any method triggers it.
type LogoutOptions struct {
	Path string
}

// Validate checks the logout route shape.
func (o LogoutOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Path, validation.Match(routePattern)),
	)
}

// PasswordOptions controls basic-auth password comparison.
type PasswordOptions struct {
	// Compare defaults to constant-time equality against User.Pass.
	// Use BcryptCompare when Pass holds a bcrypt hash.
	Compare PasswordComparer
}

// SessionOptions controls the identity attached to AuthState after a
// successful basic-auth.
type SessionOptions struct {
	// Filter defaults to User.Redacted.
	Filter UserFilter
}

// Config gathers the recognized option namespaces. The zero value is a
// working configuration.
type Config struct {
	Token    TokenOptions
	Login    LoginOptions
	Logout   LogoutOptions
	Password PasswordOptions
	Session  SessionOptions
	// Unauthorized overrides the default 401 responder.
	Unauthorized router.ErrorHandler
}

func (c *Config) setDefaults() {
	if c.Login.Path == "" {
		c.Login.Path = "/login"
	}
	if c.Login.Method == "" {
		c.Login.Method = http.MethodPost
	}
	if c.Logout.Path == "" {
		c.Logout.Path = "/logout"
	}
	if c.Token.Filter == nil {
		c.Token.Filter = (*User).Redacted
	}
	if c.Session.Filter == nil {
		c.Session.Filter = (*User).Redacted
	}
	if c.Password.Compare == nil {
		c.Password.Compare = PlainCompare
	}
	if c.Token.Decode == nil {
		c.Token.Decode = DefaultUserDecoder
	}
}

// Validate checks the route namespaces after defaults were applied.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Login),
		validation.Field(&c.Logout),
	)
}
