// Package qrgen generates QR codes as PNG images or terminal text.
package qrgen

import (
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Level is the error-correction level.
type Level string

const (
	Low     Level = "low"     // ~7% recovery
	Medium  Level = "medium"  // ~15% recovery
	High    Level = "high"    // ~25% recovery
	Highest Level = "highest" // ~30% recovery
)

func (l Level) recovery() (qrcode.RecoveryLevel, error) {
	switch l {
	case "", Medium:
		return qrcode.Medium, nil
	case Low:
		return qrcode.Low, nil
	case High:
		return qrcode.High, nil
	case Highest:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("unknown recovery level %q", l)
}

// PNG encodes content as a size x size pixel QR code PNG.
func PNG(content string, size int, level Level) ([]byte, error) {
	rl, err := level.recovery()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(content, rl, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// WritePNG encodes content and writes the PNG to path.
func WritePNG(content, path string, size int, level Level) error {
	png, err := PNG(content, size, level)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Text renders the QR code for a terminal, two modules per character
// cell, with a one-module quiet zone.
func Text(content string, level Level) (string, error) {
	rl, err := level.recovery()
	if err != nil {
		return "", err
	}
	q, err := qrcode.New(content, rl)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	bitmap := q.Bitmap()

	var sb strings.Builder
	for _, row := range bitmap {
		for _, dark := range row {
			if dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
