package qrgen

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPNG(t *testing.T) {
	data, err := PNG("https://example.com", 256, Medium)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid png: %v", err)
	}
	if img.Bounds().Dx() != 256 {
		t.Fatalf("expected 256px wide image, got %d", img.Bounds().Dx())
	}
}

func TestPNG_DefaultSize(t *testing.T) {
	data, err := PNG("x", 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty png output")
	}
}

func TestPNG_BadLevel(t *testing.T) {
	if _, err := PNG("x", 64, "ultra"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")
	if err := WritePNG("hello", path, 128, Low); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestText(t *testing.T) {
	out, err := Text("hello", Medium)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "██") {
		t.Fatal("expected dark modules in text rendering")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, l := range lines {
		if len(l) != len(lines[0]) {
			t.Fatalf("line %d width differs", i)
		}
	}
}
