// Package icons renders the tray icons once at startup.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultSize is the edge length of the encoded icons in pixels
	DefaultSize = 32

	// Glyphs are drawn this many times larger and downscaled, which antialiases the edges
	supersample = 4
)

var (
	glyphColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	backgrounds = map[domain.IconID]color.NRGBA{
		domain.IconDisconnected: {R: 0x75, G: 0x75, B: 0x75, A: 0xff},
		domain.IconPause:        {R: 0x15, G: 0x65, B: 0xc0, A: 0xff},
		domain.IconPlay:         {R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
	}

	glyphs = map[domain.IconID]func(u, v float64) bool{
		domain.IconDisconnected: disconnectedGlyph,
		domain.IconPause:        pauseGlyph,
		domain.IconPlay:         playGlyph,
	}
)

// Set holds the PNG encoding of every tray icon
type Set struct {
	size  int
	icons map[domain.IconID][]byte
}

// NewSet renders every icon eagerly
func NewSet(logger *zap.Logger) (*Set, error) {
	return NewSetWithSize(logger, DefaultSize)
}

// NewSetWithSize renders every icon at size pixels
func NewSetWithSize(logger *zap.Logger, size int) (*Set, error) {
	if size <= 0 {
		return nil, &domain.InitializationError{Component: "icons", Err: fmt.Errorf("invalid icon size %d", size)}
	}

	s := &Set{size: size, icons: make(map[domain.IconID][]byte, len(domain.AllIcons()))}
	for _, id := range domain.AllIcons() {
		img, err := Render(id, size)
		if err != nil {
			return nil, &domain.InitializationError{Component: "icons", Err: err}
		}

		buf := new(bytes.Buffer)
		if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
			return nil, &domain.InitializationError{Component: "icons", Err: fmt.Errorf("encode %s: %w", id, err)}
		}
		s.icons[id] = buf.Bytes()
	}

	logger.Debug("Tray icons rendered", zap.Int("count", len(s.icons)), zap.Int("size", size))
	return s, nil
}

// Get returns the PNG bytes of id
func (s *Set) Get(id domain.IconID) ([]byte, bool) {
	data, ok := s.icons[id]
	return data, ok
}

// Size returns the icon edge length in pixels
func (s *Set) Size() int {
	return s.size
}

// Render draws icon id at size x size
func Render(id domain.IconID, size int) (image.Image, error) {
	glyph, ok := glyphs[id]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", id)
	}
	bg := backgrounds[id]

	big := size * supersample
	canvas := imaging.New(big, big, color.NRGBA{})

	for y := 0; y < big; y++ {
		for x := 0; x < big; x++ {
			// Map the pixel center to [-1, 1]
			u := (float64(x)+0.5)/float64(big)*2 - 1
			v := (float64(y)+0.5)/float64(big)*2 - 1

			if math.Hypot(u, v) > 0.94 {
				continue
			}
			if glyph(u, v) {
				canvas.SetNRGBA(x, y, glyphColor)
			} else {
				canvas.SetNRGBA(x, y, bg)
			}
		}
	}

	return imaging.Resize(canvas, size, size, imaging.Lanczos), nil
}

// playGlyph is a right-pointing triangle
func playGlyph(u, v float64) bool {
	const left, right, half = -0.32, 0.48, 0.46
	if u < left || u > right {
		return false
	}
	// Half height shrinks linearly towards the tip
	return math.Abs(v) <= half*(right-u)/(right-left)
}

// pauseGlyph is two vertical bars
func pauseGlyph(u, v float64) bool {
	const barHalfWidth, offset, halfHeight = 0.12, 0.22, 0.44
	if math.Abs(v) > halfHeight {
		return false
	}
	return math.Abs(u-offset) <= barHalfWidth || math.Abs(u+offset) <= barHalfWidth
}

// disconnectedGlyph is a ring crossed by a diagonal slash
func disconnectedGlyph(u, v float64) bool {
	r := math.Hypot(u, v)
	if r >= 0.42 && r <= 0.58 {
		return true
	}
	return r < 0.58 && math.Abs(u-v)/math.Sqrt2 <= 0.08
}
