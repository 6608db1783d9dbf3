package session

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carried by a session token. Subject is the identity provider's
// stable id for the account; the tier on the users row stays authoritative,
// so no tier claim is read from the token.
type Claims struct {
	Subject string `json:"sub_id,omitempty"`
	Email   string `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

// Verifier checks session tokens issued by the external identity provider.
// This service only verifies; issuance lives upstream.
type Verifier interface {
	Verify(tokenString string) (Claims, error)
}

type HMACVerifier struct {
	secret []byte

	now func() time.Time
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret), now: time.Now}
}

func (v *HMACVerifier) Verify(tokenString string) (Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.ExpiresAt != nil && v.now().UTC().After(c.ExpiresAt.Time.UTC()) {
		return Claims{}, ErrTokenExpired
	}

	subject := strings.TrimSpace(c.Subject)
	if subject == "" {
		subject = strings.TrimSpace(c.RegisteredClaims.Subject)
	}
	if subject == "" {
		return Claims{}, ErrTokenInvalid
	}
	c.Subject = subject

	return c, nil
}

var _ Verifier = (*HMACVerifier)(nil)
