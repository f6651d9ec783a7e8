package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerate_Length(t *testing.T) {
	pw, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) != 16 {
		t.Fatalf("expected 16 characters, got %d", len(pw))
	}
}

func TestGenerate_ClassCoverage(t *testing.T) {
	opts := DefaultOptions()
	for i := 0; i < 20; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.ContainsAny(pw, lowerSet) || !strings.ContainsAny(pw, upperSet) ||
			!strings.ContainsAny(pw, digitSet) || !strings.ContainsAny(pw, symbolSet) {
			t.Fatalf("password %q missing a required class", pw)
		}
	}
}

func TestGenerate_DigitsOnly(t *testing.T) {
	pw, err := Generate(Options{Length: 8, Digits: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range pw {
		if !strings.ContainsRune(digitSet, c) {
			t.Fatalf("unexpected character %q in digits-only password", c)
		}
	}
}

func TestGenerate_ExcludeAmbiguous(t *testing.T) {
	opts := Options{Length: 64, Lower: true, Upper: true, Digits: true, ExcludeAmbiguous: true}
	pw, err := Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(pw, ambiguous) {
		t.Fatalf("password %q contains ambiguous characters", pw)
	}
}

func TestGenerate_Errors(t *testing.T) {
	if _, err := Generate(Options{Length: 0, Lower: true}); err == nil {
		t.Fatal("expected error for zero length")
	}
	if _, err := Generate(Options{Length: 8}); err == nil {
		t.Fatal("expected error for no classes")
	}
}

func TestEntropy(t *testing.T) {
	bits := Entropy(Options{Length: 10, Digits: true})
	// 10 * log2(10) ≈ 33.2
	if bits < 33 || bits > 34 {
		t.Fatalf("unexpected entropy: %f", bits)
	}
	if Entropy(Options{}) != 0 {
		t.Fatal("no classes should mean zero entropy")
	}
}

func TestStrength(t *testing.T) {
	cases := []struct {
		bits float64
		want string
	}{
		{10, "very weak"}, {30, "weak"}, {50, "fair"}, {100, "strong"}, {200, "very strong"},
	}
	for _, tc := range cases {
		if got := Strength(tc.bits); got != tc.want {
			t.Fatalf("Strength(%f) = %q, want %q", tc.bits, got, tc.want)
		}
	}
}

func TestHashVerify(t *testing.T) {
	// MinCost keeps the test fast.
	hash, err := Hash("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if !Verify(hash, "s3cret") {
		t.Fatal("hash should verify against original password")
	}
	if Verify(hash, "wrong") {
		t.Fatal("hash should not verify against wrong password")
	}
}
