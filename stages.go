package authchain

import (
	"github.com/goliatone/go-router"
)

// Outcome tells the pipeline driver what a stage decided.
type Outcome int

const (
	// OutcomeContinue hands the request to the next stage.
	OutcomeContinue Outcome = iota
	// OutcomeTerminate means the stage already wrote the response.
	OutcomeTerminate
)

// Stage is one step of the authentication pipeline. A stage reads and
// mutates the request's AuthState and either continues the chain,
// terminates it after writing a response, or fails with an error the
// driver routes to the Unauthorized responder.
type Stage func(c router.Context, state *AuthState) (Outcome, error)

const goodbyeMessage = "goodbye"

// logoutStage acknowledges any request to the logout path, regardless
// of method, and terminates the chain.
func (a *Auth) logoutStage(c router.Context, state *AuthState) (Outcome, error) {
	if c.Path() != a.config.Logout.Path {
		return OutcomeContinue, nil
	}

	state.Authenticated = false
	return OutcomeTerminate, c.JSON(router.StatusOK, MessageResponse{Message: goodbyeMessage})
}

// basicStage authenticates Basic credentials when present. Absent
// credentials pass through; anonymous browsing is allowed.
func (a *Auth) basicStage(c router.Context, state *AuthState) (Outcome, error) {
	if state.Authenticated {
		return OutcomeContinue, nil
	}

	name, pass, ok := BasicCredentials(c)
	if !ok {
		return OutcomeContinue, nil
	}

	ctx := c.Context()
	user, err := a.lookup(ctx, name)
	if err != nil {
		return OutcomeContinue, err
	}
	if user == nil {
		return OutcomeContinue, NewAuthenticationError("No user match")
	}

	valid, err := a.config.Password.Compare(ctx, user, pass)
	if err != nil {
		return OutcomeContinue, err
	}
	if !valid {
		return OutcomeContinue, NewAuthenticationError("Bad user or Password")
	}

	state.Authenticated = true
	state.User = a.config.Session.Filter(user)
	return OutcomeContinue, nil
}

// loginStage issues a token on the configured login route. It requires
// a prior successful credential stage in the same request.
func (a *Auth) loginStage(c router.Context, state *AuthState) (Outcome, error) {
	if c.Path() != a.config.Login.Path || c.Method() != a.config.Login.Method {
		return OutcomeContinue, nil
	}

	// A broken secret configuration must surface as a server error,
	// not a 401, so the secret resolves before the credential check.
	if _, err := a.secret.resolve(c.Context()); err != nil {
		return OutcomeContinue, err
	}

	if !state.Authenticated {
		return OutcomeContinue, NewAuthenticationError("Bad user or Password")
	}

	resp, err := a.tokens.Issue(c.Context(), state.User)
	if err != nil {
		return OutcomeContinue, err
	}

	return OutcomeTerminate, c.JSON(router.StatusOK, resp)
}

// bearerStage authenticates a bearer token from the authorization
// header, or from the configured cookie when no header is present.
func (a *Auth) bearerStage(c router.Context, state *AuthState) (Outcome, error) {
	if state.Authenticated {
		return OutcomeContinue, nil
	}

	token, ok := BearerToken(c)
	if !ok {
		token, ok = CookieToken(c, a.config.Token.Cookie)
	}
	if !ok {
		return OutcomeContinue, nil
	}

	claims, err := a.tokens.Verify(c.Context(), token)
	if err != nil {
		return OutcomeContinue, err
	}

	user, err := a.tokens.DecodeUser(claims)
	if err != nil {
		return OutcomeContinue, err
	}
	if user == nil {
		return OutcomeContinue, NewAuthenticationError("unable to decode user from token")
	}

	state.Authenticated = true
	state.User = user
	return OutcomeContinue, nil
}

// anonymousStage pins the explicit anonymous identity on requests no
// credential stage claimed, so "unauthenticated" is a queryable state
// rather than an absence of state. Running it again is a no-op.
func anonymousStage(_ router.Context, state *AuthState) (Outcome, error) {
	if !state.Authenticated {
		state.User = AnonymousUser()
	}
	return OutcomeContinue, nil
}
