// Package uuidtool generates and inspects UUIDs.
package uuidtool

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generate returns count UUIDs of the given version. Supported versions:
// 1 (time+node), 4 (random), 7 (time-ordered random).
func Generate(version, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var u uuid.UUID
		var err error
		switch version {
		case 1:
			u, err = uuid.NewUUID()
		case 4:
			u, err = uuid.NewRandom()
		case 7:
			u, err = uuid.NewV7()
		default:
			return nil, fmt.Errorf("unsupported uuid version %d (use 1, 4 or 7)", version)
		}
		if err != nil {
			return nil, fmt.Errorf("generate uuid v%d: %w", version, err)
		}
		out = append(out, u.String())
	}
	return out, nil
}

// NewV5 returns the name-based SHA-1 UUID of name within the given
// namespace ("dns", "url", "oid", "x500", or a namespace UUID).
func NewV5(namespace, name string) (string, error) {
	ns, err := resolveNamespace(namespace)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(ns, []byte(name)).String(), nil
}

func resolveNamespace(namespace string) (uuid.UUID, error) {
	switch strings.ToLower(namespace) {
	case "dns":
		return uuid.NameSpaceDNS, nil
	case "url":
		return uuid.NameSpaceURL, nil
	case "oid":
		return uuid.NameSpaceOID, nil
	case "x500":
		return uuid.NameSpaceX500, nil
	}
	ns, err := uuid.Parse(namespace)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("unknown namespace %q: %w", namespace, err)
	}
	return ns, nil
}

// Info describes a parsed UUID.
type Info struct {
	Canonical string    `json:"canonical"`
	Version   int       `json:"version"`
	Variant   string    `json:"variant"`
	Timestamp time.Time `json:"timestamp,omitzero"` // v1/v7 only
}

// Inspect parses s (with or without hyphens, braces or urn prefix) and
// reports its version, variant and embedded timestamp where defined.
func Inspect(s string) (Info, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return Info{}, fmt.Errorf("parse uuid: %w", err)
	}
	info := Info{
		Canonical: u.String(),
		Version:   int(u.Version()),
		Variant:   u.Variant().String(),
	}
	switch u.Version() {
	case 1, 7:
		sec, nsec := u.Time().UnixTime()
		info.Timestamp = time.Unix(sec, nsec).UTC()
	}
	return info, nil
}
