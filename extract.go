package authchain

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/goliatone/go-router"
)

// bearerPattern is the RFC 6750 credential grammar. The scheme keyword
// is case insensitive; whitespace around header and token is tolerated.
var bearerPattern = regexp.MustCompile(`(?i)^\s*bearer\s+([A-Za-z0-9\-._]+)\s*$`)

const basicScheme = "basic "

// BasicCredentials parses an "Authorization: Basic" header into a
// name/pass pair. Absent or malformed headers, and pairs with an empty
// name or pass, read as no credentials; they are never an error. A nil
// context is programmer error.
func BasicCredentials(c router.Context) (name, pass string, ok bool) {
	if c == nil {
		panic("authchain: router context is required")
	}

	header := strings.TrimSpace(c.Header(router.HeaderAuthorization))
	if len(header) <= len(basicScheme) || !strings.EqualFold(header[:len(basicScheme)], basicScheme) {
		return "", "", false
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(basicScheme):]))
	if err != nil {
		return "", "", false
	}

	name, pass, found := strings.Cut(string(raw), ":")
	if !found || name == "" || pass == "" {
		return "", "", false
	}

	return name, pass, true
}

// BearerToken extracts the bearer credential from the authorization
// header, or reports absence when the header is missing or does not
// match the grammar. A nil context is programmer error.
func BearerToken(c router.Context) (string, bool) {
	if c == nil {
		panic("authchain: router context is required")
	}

	match := bearerPattern.FindStringSubmatch(c.Header(router.HeaderAuthorization))
	if match == nil {
		return "", false
	}

	return match[1], true
}

// CookieToken reads a token from the named cookie, the alternate
// transport for hosts that store the JWT client-side as a cookie.
func CookieToken(c router.Context, name string) (string, bool) {
	if name == "" {
		return "", false
	}

	token := c.Cookies(name)
	if token == "" {
		return "", false
	}

	return token, true
}
