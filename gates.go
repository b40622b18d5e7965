package authchain

import (
	"github.com/goliatone/go-router"
)

// Any establishes the authenticated-or-anonymous default and lets every
// request through. Use it on routes that accept both.
func (a *Auth) Any() router.MiddlewareFunc {
	return a.middleware("any", anonymousStage)
}

// User admits only authenticated requests.
func (a *Auth) User() router.MiddlewareFunc {
	return a.gate(func(state *AuthState) bool {
		return state.Authenticated
	})
}

// Admin admits authenticated users carrying the admin flag. Role-list
// deployments can use HasRole("admin") instead.
func (a *Auth) Admin() router.MiddlewareFunc {
	return a.gate(func(state *AuthState) bool {
		return state.Authenticated && state.User.IsAdmin()
	})
}

// HasRole admits authenticated users whose role list contains role. An
// empty role is programmer error and panics at construction, not at
// request time.
func (a *Auth) HasRole(role string) router.MiddlewareFunc {
	if role == "" {
		panic("authchain: role must be a non-empty string")
	}
	return a.gate(func(state *AuthState) bool {
		return state.Authenticated && state.User.HasRole(role)
	})
}

func (a *Auth) gate(allow func(*AuthState) bool) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			if !allow(StateFromRouter(c)) {
				return a.Unauthorized(c, NewAuthenticationError(""))
			}
			return c.Next()
		}
	}
}
