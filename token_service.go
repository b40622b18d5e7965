package authchain

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenService signs and verifies bearer tokens against the resolved
// shared secret. Hosts that mint or check tokens outside the pipeline
// reach it through Auth.TokenService.
type TokenService struct {
	secret *secretCell
	opts   TokenOptions
	logger Logger
}

func newTokenService(secret *secretCell, opts TokenOptions, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		secret: secret,
		opts:   opts,
		logger: logger,
	}
}

// TokenResponse is the login payload: the filtered user identity and
// the signed token.
type TokenResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Issue filters the user, populates the configured claims, and signs
// the result with the resolved secret. Signing failures are tagged as
// token codec errors, not authentication failures.
func (ts *TokenService) Issue(ctx context.Context, user *User) (*TokenResponse, error) {
	secret, err := ts.secret.resolve(ctx)
	if err != nil {
		return nil, err
	}

	filter := ts.opts.Filter
	if filter == nil {
		filter = (*User).Redacted
	}
	filtered := filter(user)

	claims := &TokenClaims{User: filtered}
	if err := ts.populateClaims(claims, user); err != nil {
		return nil, err
	}
	ensureTokenID(&claims.RegisteredClaims)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		ts.logger.Error("token signing failed: %v", err)
		return nil, NewTokenSigningError(err)
	}

	return &TokenResponse{User: filtered, Token: signed}, nil
}

func (ts *TokenService) populateClaims(claims *TokenClaims, user *User) error {
	if ts.opts.Exp != nil {
		t, err := ts.opts.Exp(user)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to derive exp claim")
		}
		claims.ExpiresAt = jwt.NewNumericDate(t)
	}
	if ts.opts.Iss != nil {
		iss, err := ts.opts.Iss(user)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to derive iss claim")
		}
		claims.Issuer = iss
	}
	if ts.opts.Sub != nil {
		sub, err := ts.opts.Sub(user)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to derive sub claim")
		}
		claims.Subject = sub
	}
	if ts.opts.Aud != nil {
		aud, err := ts.opts.Aud(user)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to derive aud claim")
		}
		claims.Audience = jwt.ClaimStrings(aud)
	}
	return nil
}

// Verify parses and validates a token string. Failures surface as
// authentication errors carrying the underlying reason.
func (ts *TokenService) Verify(ctx context.Context, tokenString string) (*TokenClaims, error) {
	secret, err := ts.secret.resolve(ctx)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, wrapVerificationError(err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		ts.logger.Error("could not decode or validate token claims")
		return nil, NewAuthenticationError("unable to decode token claims")
	}

	return claims, nil
}

// wrapVerificationError forwards the parser's failure reason so callers
// see why verification failed.
func wrapVerificationError(err error) error {
	switch {
	case goerrors.Is(err, jwt.ErrTokenExpired):
		return NewAuthenticationError("jwt expired")
	case goerrors.Is(err, jwt.ErrSignatureInvalid), goerrors.Is(err, jwt.ErrTokenSignatureInvalid):
		return NewAuthenticationError("invalid signature")
	default:
		return NewAuthenticationError(err.Error())
	}
}

// DecodeUser recovers a user identity from verified claims using the
// configured decoder.
func (ts *TokenService) DecodeUser(claims *TokenClaims) (*User, error) {
	decode := ts.opts.Decode
	if decode == nil {
		decode = DefaultUserDecoder
	}
	return decode(claims)
}

// DefaultUserDecoder prefers the embedded user claim and falls back to
// an identity named after the issuer. A nil result reads as an
// authentication failure downstream.
func DefaultUserDecoder(claims *TokenClaims) (*User, error) {
	if claims == nil {
		return nil, nil
	}
	if claims.User != nil {
		return claims.User, nil
	}
	if claims.Issuer != "" {
		return &User{Name: claims.Issuer}, nil
	}
	return nil, nil
}
