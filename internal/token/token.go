// Package token decodes and verifies the bearer session token issued by the
// credential-verification service.
package token

import (
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stripe-autobot/dashgate/sessioninfo"
)

// Verifier validates bearer tokens against the credential service's signing
// key. The exp claim is the sole expiry authority.
type Verifier struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// NewVerifier creates a Verifier for tokens signed with the given HMAC key.
// An empty issuer disables issuer checking.
func NewVerifier(key []byte, issuer string) *Verifier {
	return &Verifier{
		key:    key,
		issuer: issuer,
		now:    time.Now,
	}
}

// SetTimeFunc overrides the clock used for expiry checks. Used by tests.
func (v *Verifier) SetTimeFunc(now func() time.Time) {
	v.now = now
}

// Decode parses and verifies a bearer token and returns the session it
// represents. Signature, expiry, and issuer failures all return an error;
// callers decide whether that degrades to an absent session or surfaces.
func (v *Verifier) Decode(tokenString string) (*sessioninfo.Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.Parse(tokenString, func(_ *jwt.Token) (any, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "jwt.Parse()")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "jwt.MapClaims.GetSubject()")
	}
	if subject == "" {
		return nil, errors.New("token missing subject")
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "jwt.MapClaims.GetExpirationTime()")
	}

	return &sessioninfo.Session{
		Subject:   subject,
		Role:      roleClaim(claims),
		Claims:    map[string]any(claims),
		ExpiresAt: expiresAt.Time,
	}, nil
}

func roleClaim(claims jwt.MapClaims) sessioninfo.Role {
	role, _ := claims["role"].(string)
	if sessioninfo.Role(role) == sessioninfo.RoleAdmin {
		return sessioninfo.RoleAdmin
	}

	return sessioninfo.RoleUser
}
