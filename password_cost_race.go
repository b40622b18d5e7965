//go:build race

package authchain

import "golang.org/x/crypto/bcrypt"

// The race detector inflates bcrypt's runtime enough to blow test
// deadlines at the production work factor, so race builds hash at the
// default cost instead.
const hashCost = bcrypt.DefaultCost
