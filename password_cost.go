//go:build !race

package authchain

import "golang.org/x/crypto/bcrypt"

// HashPassword work factor. Deliberately above bcrypt's default; login
// latency is dominated by this.
const hashCost = bcrypt.DefaultCost + 4
