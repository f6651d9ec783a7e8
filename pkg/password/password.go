// Package password generates random passwords, estimates their strength,
// and wraps bcrypt hashing.
package password

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	lowerSet  = "abcdefghijklmnopqrstuvwxyz"
	upperSet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitSet  = "0123456789"
	symbolSet = "!@#$%^&*()-_=+[]{};:,.<>?"

	// Characters easy to misread in print: excluded when requested.
	ambiguous = "0O1lI|`'\""
)

// Options controls password generation.
type Options struct {
	Length           int  `json:"length" yaml:"length"`
	Lower            bool `json:"lower" yaml:"lower"`
	Upper            bool `json:"upper" yaml:"upper"`
	Digits           bool `json:"digits" yaml:"digits"`
	Symbols          bool `json:"symbols" yaml:"symbols"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous" yaml:"exclude_ambiguous"`
}

// DefaultOptions returns a 16-character policy with all classes enabled.
func DefaultOptions() Options {
	return Options{Length: 16, Lower: true, Upper: true, Digits: true, Symbols: true}
}

// Generate produces a random password. Every enabled character class is
// guaranteed to appear at least once (when length permits).
func Generate(opts Options) (string, error) {
	if opts.Length < 1 {
		return "", fmt.Errorf("length must be positive")
	}
	classes := opts.classes()
	if len(classes) == 0 {
		return "", fmt.Errorf("no character classes enabled")
	}

	pool := strings.Join(classes, "")
	buf := make([]byte, opts.Length)

	// One guaranteed pick per class first, then fill from the full pool.
	i := 0
	if opts.Length >= len(classes) {
		for _, class := range classes {
			c, err := pick(class)
			if err != nil {
				return "", err
			}
			buf[i] = c
			i++
		}
	}
	for ; i < opts.Length; i++ {
		c, err := pick(pool)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}

	if err := shuffle(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// classes returns the enabled alphabets, ambiguous characters removed
// when configured.
func (o Options) classes() []string {
	var out []string
	add := func(set string) {
		if o.ExcludeAmbiguous {
			set = strings.Map(func(r rune) rune {
				if strings.ContainsRune(ambiguous, r) {
					return -1
				}
				return r
			}, set)
		}
		if set != "" {
			out = append(out, set)
		}
	}
	if o.Lower {
		add(lowerSet)
	}
	if o.Upper {
		add(upperSet)
	}
	if o.Digits {
		add(digitSet)
	}
	if o.Symbols {
		add(symbolSet)
	}
	return out
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return set[n.Int64()], nil
}

func shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("read random: %w", err)
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}

// Entropy returns the theoretical entropy in bits for passwords generated
// with opts: length * log2(pool size).
func Entropy(opts Options) float64 {
	pool := len(strings.Join(opts.classes(), ""))
	if pool == 0 || opts.Length < 1 {
		return 0
	}
	return float64(opts.Length) * math.Log2(float64(pool))
}

// Strength buckets an entropy value into a label.
func Strength(bits float64) string {
	switch {
	case bits < 28:
		return "very weak"
	case bits < 36:
		return "weak"
	case bits < 60:
		return "fair"
	case bits < 128:
		return "strong"
	default:
		return "very strong"
	}
}

// Hash returns the bcrypt hash of password at the given cost; cost 0
// means bcrypt.DefaultCost.
func Hash(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches a bcrypt hash.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
