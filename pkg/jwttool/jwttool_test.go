package jwttool

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDecode(t *testing.T) {
	tok := sign(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"iss": "toolbox",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	d, err := Decode(tok)
	if err != nil {
		t.Fatal(err)
	}
	if d.Algorithm != "HS256" {
		t.Fatalf("algorithm: %s", d.Algorithm)
	}
	if d.Subject != "user-1" || d.Issuer != "toolbox" {
		t.Fatalf("claims not extracted: %+v", d)
	}
	if d.Expired {
		t.Fatal("token should not be expired")
	}
	if d.Verified {
		t.Fatal("decode must not claim verification")
	}
}

func TestDecode_Expired(t *testing.T) {
	tok := sign(t, "secret", jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	d, err := Decode(tok)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Expired {
		t.Fatal("expected expired token")
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode("not.a.jwt"); err == nil {
		t.Fatal("expected error")
	}
}

func TestVerify(t *testing.T) {
	tok := sign(t, "topsecret", jwt.MapClaims{"sub": "x", "exp": time.Now().Add(time.Hour).Unix()})
	d, err := Verify(tok, "topsecret")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Verified {
		t.Fatal("expected verified token")
	}
	if _, err := Verify(tok, "wrong"); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestPrettyJSON(t *testing.T) {
	tok := sign(t, "s", jwt.MapClaims{"sub": "x"})
	d, err := Decode(tok)
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.PrettyJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"alg": "HS256"`) || !strings.Contains(out, `"sub": "x"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
