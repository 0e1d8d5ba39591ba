// Package text rasterizes label strings into RGBA bitmaps for texturing.
package text

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/labelsphere/internal/logger"
)

// ErrEmpty is returned when rasterizing a string with no visible extent.
var ErrEmpty = errors.New("text: empty string")

// padding around the glyph run, in pixels, so mipmapping does not bleed edges.
const padding = 4

// Rasterizer draws strings with a single face at a fixed pixel size.
type Rasterizer struct {
	font   *opentype.Font
	face   font.Face
	pixels float64
	source string
	buf    sfnt.Buffer
}

// SystemFontPaths are Hangul-capable fonts tried in order when no font path
// is configured.
var SystemFontPaths = []string{
	"/Library/Fonts/Arial Unicode.ttf",                       // macOS (symlink)
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",   // macOS (actual)
	"/System/Library/Fonts/AppleSDGothicNeo.ttc",             // macOS
	"C:\\Windows\\Fonts\\malgun.ttf",                         // Windows (Malgun Gothic)
	"C:\\Windows\\Fonts\\gulim.ttc",                          // Windows (Gulim)
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc", // Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc", // Linux alt
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",      // Arch
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",        // Debian fonts-nanum
}

// NewRasterizer loads the font at path. An empty path tries SystemFontPaths
// and then the embedded Go Regular face, which has no Hangul.
// Collections (.ttc) use their first font.
func NewRasterizer(path string, pixels float64) (*Rasterizer, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("text: invalid pixel size %v", pixels)
	}

	var (
		f      *opentype.Font
		source string
		err    error
	)
	if path != "" {
		f, err = loadFont(path)
		if err != nil {
			return nil, err
		}
		source = path
	} else {
		f, source, err = systemFont(SystemFontPaths)
		if err != nil {
			return nil, err
		}
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    pixels,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}

	logger.Info("font loaded",
		zap.String("source", source),
		zap.Float64("pixels", pixels),
	)

	return &Rasterizer{font: f, face: face, pixels: pixels, source: source}, nil
}

func loadFont(path string) (*opentype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	f, err := parseFont(b)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return f, nil
}

// systemFont returns the first candidate that exists and parses, or the
// embedded face.
func systemFont(candidates []string) (*opentype.Font, string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := loadFont(path)
		if err != nil {
			logger.Warn("skipping system font", zap.String("path", path), zap.Error(err))
			continue
		}
		return f, path, nil
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, "", fmt.Errorf("parsing embedded font: %w", err)
	}
	return f, "goregular", nil
}

func parseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err == nil {
		return f, nil
	}
	c, cerr := opentype.ParseCollection(data)
	if cerr != nil {
		return nil, err
	}
	return c.Font(0)
}

// Source names where the face came from.
func (r *Rasterizer) Source() string {
	return r.source
}

// PixelSize returns the em size glyphs are rasterized at.
func (r *Rasterizer) PixelSize() float64 {
	return r.pixels
}

// Missing returns the distinct non-space runes in s the face has no glyph for.
func (r *Rasterizer) Missing(s string) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, c := range s {
		if seen[c] || c == ' ' {
			continue
		}
		seen[c] = true
		idx, err := r.font.GlyphIndex(&r.buf, c)
		if err != nil || idx == 0 {
			missing = append(missing, c)
		}
	}
	return missing
}

// Rasterize draws s as white glyphs on a transparent background.
func (r *Rasterizer) Rasterize(s string) (*image.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	advance := font.MeasureString(r.face, s)
	m := r.face.Metrics()

	w := advance.Ceil() + 2*padding
	h := (m.Ascent + m.Descent).Ceil() + 2*padding
	if advance <= 0 || h <= 2*padding {
		return nil, ErrEmpty
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(padding),
			Y: fixed.I(padding) + m.Ascent,
		},
	}
	d.DrawString(s)
	return img, nil
}

// WorldSize converts a bitmap size to world units so that one em equals
// fontSize.
func (r *Rasterizer) WorldSize(bounds image.Rectangle, fontSize float32) (w, h float32) {
	scale := fontSize / float32(r.pixels)
	return float32(bounds.Dx()) * scale, float32(bounds.Dy()) * scale
}

// Close releases the face.
func (r *Rasterizer) Close() error {
	return r.face.Close()
}
