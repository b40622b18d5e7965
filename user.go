package authchain

import "slices"

// AnonymousName is the placeholder identity the anonymous-fallback stage
// pins on unauthenticated requests.
const AnonymousName = "anonymous"

// User is the identity attached to authenticated requests and embedded
// in issued tokens. Pass holds the password-equivalent credential owned
// by the UserLookup collaborator; the pipeline only reads it and strips
// it before the identity leaves the process.
type User struct {
	Name     string         `json:"name"`
	Pass     string         `json:"pass,omitempty"`
	Admin    bool           `json:"admin,omitempty"`
	Roles    []string       `json:"roles,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Redacted returns a shallow copy with the credential field removed.
// This is the default session and token filter.
func (u *User) Redacted() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Pass = ""
	return &clone
}

// HasRole reports whether the user's role list contains role.
func (u *User) HasRole(role string) bool {
	return u != nil && slices.Contains(u.Roles, role)
}

// IsAdmin reports the user's admin flag.
func (u *User) IsAdmin() bool {
	return u != nil && u.Admin
}

// AnonymousUser returns the fallback identity.
func AnonymousUser() *User {
	return &User{Name: AnonymousName}
}
