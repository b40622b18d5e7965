package authchain

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// Auth wires the credential stages, authorization gates, and token
// service behind one constructor.
type Auth struct {
	secret *secretCell
	lookup UserLookup
	config Config
	tokens *TokenService
	logger Logger
}

// New builds the authentication chain. A missing secret source or user
// lookup is a configuration error surfaced immediately, never per
// request. The secret itself resolves lazily at first use.
func New(secret SecretSource, lookup UserLookup, cfg *Config) (*Auth, error) {
	if secret == nil {
		return nil, ErrNoSecret
	}
	if lookup == nil {
		return nil, ErrNoUserLookup
	}

	config := Config{}
	if cfg != nil {
		config = *cfg
	}
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid auth configuration")
	}

	cell := newSecretCell(secret)
	a := &Auth{
		secret: cell,
		lookup: lookup,
		config: config,
		logger: defLogger{},
	}
	a.tokens = newTokenService(cell, config.Token, a.logger)

	return a, nil
}

// WithLogger overrides the default logger.
func (a *Auth) WithLogger(logger Logger) *Auth {
	if logger != nil {
		a.logger = logger
		a.tokens = newTokenService(a.secret, a.config.Token, logger)
	}
	return a
}

// TokenService exposes the codec for hosts that mint or verify tokens
// outside the pipeline.
func (a *Auth) TokenService() *TokenService {
	return a.tokens
}

// Default returns the ordered middleware chain to install as request
// middleware: logout, basic-auth, login, bearer-auth, and
// anonymous-fallback. At most one credential stage does work per
// request; every stage passes through once the request is
// authenticated.
func (a *Auth) Default() []router.MiddlewareFunc {
	return []router.MiddlewareFunc{
		a.middleware("logout", a.logoutStage),
		a.middleware("basic-auth", a.basicStage),
		a.middleware("login", a.loginStage),
		a.middleware("bearer-auth", a.bearerStage),
		a.middleware("anonymous", anonymousStage),
	}
}

// middleware adapts a Stage into router middleware: stage errors route
// to the Unauthorized responder, termination stops the chain, and a
// continuing stage mirrors the AuthState into the request context
// before handing off.
func (a *Auth) middleware(name string, stage Stage) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			state := StateFromRouter(c)

			outcome, err := stage(c, state)
			if err != nil {
				a.logger.Debug("stage %s failed: %v", name, err)
				return a.Unauthorized(c, err)
			}
			if outcome == OutcomeTerminate {
				return nil
			}

			c.SetContext(WithState(c.Context(), state))
			return c.Next()
		}
	}
}
