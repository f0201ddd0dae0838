// Package banner renders characters as large block art using half-block characters.
package banner

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoFont is returned when no CJK font is installed.
var ErrNoFont = errors.New("no CJK font found")

// fontPaths are common system locations of CJK fonts.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// threshold is the brightness above which a half cell is drawn.
const threshold = uint8(40)

// ParseFace builds a face from TrueType or OpenType data, accepting font
// collections.
func ParseFace(data []byte, size float64) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: size, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, opts)
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return opentype.NewFace(fnt, opts)
}

// LoadSystemFace loads the first CJK font found on the system.
func LoadSystemFace() (font.Face, error) {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face, err := ParseFace(data, 64); err == nil {
			return face, nil
		}
	}
	return nil, ErrNoFont
}

type cacheKey struct {
	char       rune
	cols, rows int
}

// Renderer draws glyphs of one face. It is safe for concurrent use.
type Renderer struct {
	face font.Face

	mu    sync.Mutex
	cache map[cacheKey]string
}

// NewRenderer creates a Renderer. A nil face renders nothing.
func NewRenderer(face font.Face) *Renderer {
	return &Renderer{face: face, cache: make(map[cacheKey]string)}
}

// Available reports whether the renderer has a face.
func (r *Renderer) Available() bool {
	return r != nil && r.face != nil
}

// RenderBlock renders the first rune of char in cols by rows terminal cells.
func (r *Renderer) RenderBlock(char string, cols, rows int) string {
	if char == "" || !r.Available() || cols <= 0 || rows <= 0 {
		return ""
	}
	ch := []rune(char)[0]
	key := cacheKey{ch, cols, rows}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached
	}
	rendered := r.render(ch, cols, rows)
	r.cache[key] = rendered
	return rendered
}

// RenderPhrase renders up to limit letters of text side by side, skipping
// punctuation and spaces.
func (r *Renderer) RenderPhrase(text string, limit, cols, rows int) string {
	if !r.Available() {
		return ""
	}

	var blocks [][]string
	for _, ch := range text {
		if len(blocks) == limit {
			break
		}
		if unicode.IsPunct(ch) || unicode.IsSpace(ch) {
			continue
		}
		if block := r.RenderBlock(string(ch), cols, rows); block != "" {
			blocks = append(blocks, strings.Split(block, "\n"))
		}
	}
	if len(blocks) == 0 {
		return ""
	}

	lines := make([]string, rows)
	for row := range lines {
		parts := make([]string, len(blocks))
		for i, b := range blocks {
			parts[i] = b[row]
		}
		lines[row] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) render(ch rune, cols, rows int) string {
	bounds, _, _ := r.face.GlyphBounds(ch)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Pad around the glyph
	padding := 4
	srcWidth := max(glyphWidth+padding*2, 64)
	srcHeight := max(glyphHeight+padding*2, 64)

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	x := (srcWidth - glyphWidth) / 2
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(string(ch))

	// rows*2 because each cell holds two pixels
	scaled := scaleDown(srcImg, cols, rows*2)
	return imageToHalfBlocks(scaled, cols, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sy1 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
