package uuidtool

import (
	"testing"
	"time"
)

func TestGenerate_V4(t *testing.T) {
	out, err := Generate(4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 uuids, got %d", len(out))
	}
	seen := map[string]bool{}
	for _, s := range out {
		info, err := Inspect(s)
		if err != nil {
			t.Fatalf("generated uuid %q does not parse: %v", s, err)
		}
		if info.Version != 4 {
			t.Fatalf("expected version 4, got %d", info.Version)
		}
		if seen[s] {
			t.Fatalf("duplicate uuid %s", s)
		}
		seen[s] = true
	}
}

func TestGenerate_V7_TimeOrdered(t *testing.T) {
	out, err := Generate(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			t.Fatalf("v7 uuids not lexically ordered: %s before %s", out[i-1], out[i])
		}
	}
	info, err := Inspect(out[0])
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(info.Timestamp) > time.Minute {
		t.Fatalf("v7 timestamp too old: %v", info.Timestamp)
	}
}

func TestGenerate_BadVersion(t *testing.T) {
	if _, err := Generate(3, 1); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestNewV5_Deterministic(t *testing.T) {
	a, err := NewV5("dns", "example.com")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewV5("dns", "example.com")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("v5 should be deterministic: %s vs %s", a, b)
	}
	// Well-known value for NameSpaceDNS + "example.com".
	if a != "cfbff0d1-9375-5685-968c-48ce8b15ae17" {
		t.Fatalf("unexpected v5 uuid: %s", a)
	}
}

func TestNewV5_BadNamespace(t *testing.T) {
	if _, err := NewV5("nope", "x"); err == nil {
		t.Fatal("expected error for unknown namespace")
	}
}

func TestInspect_Forms(t *testing.T) {
	const canonical = "cfbff0d1-9375-5685-968c-48ce8b15ae17"
	for _, form := range []string{
		canonical,
		"{cfbff0d1-9375-5685-968c-48ce8b15ae17}",
		"urn:uuid:cfbff0d1-9375-5685-968c-48ce8b15ae17",
	} {
		info, err := Inspect(form)
		if err != nil {
			t.Fatalf("Inspect(%q): %v", form, err)
		}
		if info.Canonical != canonical {
			t.Fatalf("Inspect(%q): canonical %s", form, info.Canonical)
		}
		if info.Version != 5 {
			t.Fatalf("expected version 5, got %d", info.Version)
		}
		if info.Variant != "RFC4122" {
			t.Fatalf("unexpected variant: %s", info.Variant)
		}
	}
}

func TestInspect_Invalid(t *testing.T) {
	if _, err := Inspect("not-a-uuid"); err == nil {
		t.Fatal("expected error")
	}
}
