package authchain_test

import (
	"context"
	"net/http"
	"testing"

	authchain "github.com/goliatone/go-auth-chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainCompare(t *testing.T) {
	user := &authchain.User{Name: "user", Pass: "pass"}
	ctx := context.Background()

	ok, err := authchain.PlainCompare(ctx, user, "pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = authchain.PlainCompare(ctx, user, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = authchain.PlainCompare(ctx, nil, "pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptCompare(t *testing.T) {
	hash, err := authchain.HashPassword("s3cret-passphrase")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	user := &authchain.User{Name: "user", Pass: hash}
	ctx := context.Background()

	ok, err := authchain.BcryptCompare(ctx, user, "s3cret-passphrase")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = authchain.BcryptCompare(ctx, user, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = authchain.BcryptCompare(ctx, &authchain.User{Pass: "not-a-hash"}, "whatever")
	assert.Error(t, err, "a corrupt stored hash is an infrastructure error, not a mismatch")
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := authchain.HashPassword("")
	assert.Error(t, err)
}

func TestCustomCompareWiresIntoPipeline(t *testing.T) {
	hash, err := authchain.HashPassword("correct horse")
	require.NoError(t, err)

	users := map[string]*authchain.User{
		"user": {Name: "user", Pass: hash},
	}

	a, err := authchain.New(authchain.StaticSecret("s"), lookupTable(users), &authchain.Config{
		Password: authchain.PasswordOptions{Compare: authchain.BcryptCompare},
	})
	require.NoError(t, err)

	c := newFakeContext(http.MethodGet, "/").withBasicAuth("user", "correct horse")
	require.NoError(t, runPipeline(a, c))
	assert.True(t, authchain.StateFromRouter(c).Authenticated)

	c = newFakeContext(http.MethodGet, "/").withBasicAuth("user", "wrong battery staple")
	require.NoError(t, runPipeline(a, c))
	assert.Equal(t, authchain.MessageResponse{Message: "Bad user or Password"}, c.jsonBody)
}
