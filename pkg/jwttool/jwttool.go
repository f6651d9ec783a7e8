// Package jwttool decodes and optionally verifies JSON Web Tokens.
package jwttool

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decoded holds the readable parts of a token. Decoding does not verify
// the signature; Verified is set only by Verify.
type Decoded struct {
	Header    map[string]any `json:"header"`
	Claims    map[string]any `json:"claims"`
	Algorithm string         `json:"algorithm"`
	Subject   string         `json:"subject,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	ExpiresAt time.Time      `json:"expires_at,omitzero"`
	Expired   bool           `json:"expired"`
	Verified  bool           `json:"verified"`
}

// Decode parses a token without verifying its signature.
func Decode(tokenString string) (*Decoded, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	token, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return build(token, claims)
}

// Verify parses a token and checks its HMAC signature against secret.
// Non-HMAC tokens are rejected.
func Verify(tokenString, secret string) (*Decoded, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	d, err := build(token, claims)
	if err != nil {
		return nil, err
	}
	d.Verified = token.Valid
	return d, nil
}

func build(token *jwt.Token, claims jwt.MapClaims) (*Decoded, error) {
	d := &Decoded{
		Header: token.Header,
		Claims: map[string]any(claims),
	}
	if alg, ok := token.Header["alg"].(string); ok {
		d.Algorithm = alg
	}
	if sub, err := claims.GetSubject(); err == nil {
		d.Subject = sub
	}
	if iss, err := claims.GetIssuer(); err == nil {
		d.Issuer = iss
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		d.ExpiresAt = exp.Time
		d.Expired = exp.Before(time.Now())
	}
	return d, nil
}

// PrettyJSON renders the header and claims as indented JSON blocks.
func (d *Decoded) PrettyJSON() (string, error) {
	header, err := json.MarshalIndent(d.Header, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode header: %w", err)
	}
	claims, err := json.MarshalIndent(d.Claims, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode claims: %w", err)
	}
	return string(header) + "\n" + string(claims) + "\n", nil
}
