package icons

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

func TestNewSet(t *testing.T) {
	set, err := NewSet(zap.NewNop())
	if err != nil {
		t.Fatalf("NewSet() error: %v", err)
	}

	for _, id := range domain.AllIcons() {
		t.Run(string(id), func(t *testing.T) {
			data, ok := set.Get(id)
			if !ok || len(data) == 0 {
				t.Fatalf("no icon for %q", id)
			}

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("icon is not a valid PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != DefaultSize || b.Dy() != DefaultSize {
				t.Errorf("expected %dx%d, got %dx%d", DefaultSize, DefaultSize, b.Dx(), b.Dy())
			}
		})
	}
}

func TestNewSetWithSize_Invalid(t *testing.T) {
	_, err := NewSetWithSize(zap.NewNop(), 0)

	var initErr *domain.InitializationError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected InitializationError, got %v", err)
	}
	if initErr.Component != "icons" {
		t.Errorf("Component = %q, want icons", initErr.Component)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		id          domain.IconID
		centerGlyph bool
	}{
		{name: "Play triangle covers the center", id: domain.IconPlay, centerGlyph: true},
		{name: "Pause bars leave the center open", id: domain.IconPause, centerGlyph: false},
		{name: "Disconnected slash crosses the center", id: domain.IconDisconnected, centerGlyph: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render(tt.id, 64)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}

			// Corners are outside the disc
			if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
				t.Errorf("corner alpha = %d, want transparent", a)
			}

			r, g, b, _ := img.At(32, 32).RGBA()
			white := r > 0xe000 && g > 0xe000 && b > 0xe000
			if white != tt.centerGlyph {
				t.Errorf("center white = %v, want %v", white, tt.centerGlyph)
			}
		})
	}
}

func TestRender_UnknownIcon(t *testing.T) {
	if _, err := Render("volume", 32); err == nil {
		t.Error("expected error for unknown icon")
	}
}

func TestICO(t *testing.T) {
	img, err := Render(domain.IconPlay, 32)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	payload := buf.Bytes()

	ico, err := ICO(payload, 32)
	if err != nil {
		t.Fatalf("ICO() error: %v", err)
	}

	if got := binary.LittleEndian.Uint16(ico[2:4]); got != 1 {
		t.Errorf("type = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(ico[4:6]); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
	if ico[6] != 32 || ico[7] != 32 {
		t.Errorf("dimensions = %dx%d, want 32x32", ico[6], ico[7])
	}
	if got := binary.LittleEndian.Uint32(ico[14:18]); int(got) != len(payload) {
		t.Errorf("payload size = %d, want %d", got, len(payload))
	}
	if got := binary.LittleEndian.Uint32(ico[18:22]); got != 22 {
		t.Errorf("offset = %d, want 22", got)
	}

	// The payload is still a decodable image
	if _, _, err := image.Decode(bytes.NewReader(ico[22:])); err != nil {
		t.Errorf("embedded PNG: %v", err)
	}
}

func TestICO_InvalidSize(t *testing.T) {
	if _, err := ICO([]byte{1}, 512); err == nil {
		t.Error("expected error for oversize icon")
	}
}
