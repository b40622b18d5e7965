package authchain

import (
	"context"

	"github.com/goliatone/go-router"
)

// AuthState is the per-request authentication outcome. It is created
// fresh per request, mutated by at most one successful credential
// stage, and read by gates and downstream handlers. After the pipeline
// completes, Authenticated and User are always set together.
type AuthState struct {
	Authenticated bool
	User          *User
}

const stateLocalsKey = "authchain:state"

var stateCtxKey = &contextKey{"auth-state"}

type contextKey struct {
	name string
}

// StateFromRouter returns the request's AuthState, creating and
// attaching a fresh one when the pipeline has not touched the request
// yet.
func StateFromRouter(c router.Context) *AuthState {
	if raw := c.Locals(stateLocalsKey); raw != nil {
		if state, ok := raw.(*AuthState); ok {
			return state
		}
	}

	state := &AuthState{}
	c.Locals(stateLocalsKey, state)
	return state
}

// WithState sets the AuthState in the given context so handlers working
// with a standard context.Context can reach it.
func WithState(ctx context.Context, state *AuthState) context.Context {
	return context.WithValue(ctx, stateCtxKey, state)
}

// StateFromContext finds the AuthState in a standard context.
func StateFromContext(ctx context.Context) (*AuthState, bool) {
	state, ok := ctx.Value(stateCtxKey).(*AuthState)
	return state, ok
}
