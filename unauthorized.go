package authchain

import (
	"github.com/goliatone/go-router"
)

const wwwAuthenticateHeader = "WWW-Authenticate"

const basicChallenge = `Basic realm="Authorization Required"`

// MessageResponse is the stable JSON shape for failure and
// acknowledgement bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// Unauthorized is the terminal handler for authentication failures.
// Errors of any other kind propagate unchanged so the host's generic
// error handling still applies. Hosts override the 401 rendering via
// Config.Unauthorized.
func (a *Auth) Unauthorized(c router.Context, err error) error {
	if !IsAuthenticationError(err) {
		return err
	}

	if a.config.Unauthorized != nil {
		return a.config.Unauthorized(c, err)
	}

	c.SetHeader(wwwAuthenticateHeader, basicChallenge)
	return c.JSON(router.StatusUnauthorized, MessageResponse{Message: errorMessage(err)})
}
