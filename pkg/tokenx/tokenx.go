// Package tokenx issues and verifies the bearer tokens that authenticate
// API requests. Tokens are HS256-signed JWTs carrying the user id as the
// subject and a fixed expiry. There is no server-side session storage and
// no revocation before expiry.
package tokenx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the default token lifetime.
const DefaultTTL = time.Hour

var (
	ErrExpired = errors.New("tokenx: token expired")
	ErrInvalid = errors.New("tokenx: invalid token")
)

// Verifier validates a bearer token and returns the user id it was issued
// for. The HTTP auth middleware depends on this rather than on Issuer so
// tests can substitute their own.
type Verifier interface {
	Verify(token string) (int64, error)
}

// Issuer mints and verifies HS256 tokens with a single shared secret.
// The secret is injected at construction and never read from globals.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration

	// now is the clock used for both issuance and expiry checks.
	// Overridable via WithClock for deterministic expiry tests.
	now func() time.Time
}

// New returns an Issuer signing with the given secret. A zero ttl falls
// back to DefaultTTL.
func New(secret []byte, issuer string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source and returns the Issuer for chaining.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// TTL reports the configured token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue mints a signed token for the given user, valid from now until
// now + TTL.
func (i *Issuer) Issue(userID int64) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		ID:        newJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry of a token and returns the
// embedded user id. It fails with ErrExpired when the token's lifetime has
// elapsed and ErrInvalid for every other defect (bad signature, wrong
// algorithm, malformed payload, non-numeric subject).
func (i *Issuer) Verify(token string) (int64, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return userID, nil
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
