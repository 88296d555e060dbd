// Package fbcon implements a text console that renders the character
// stream into a framebuffer image.
package fbcon

import (
	"bytes"
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// Console collects written bytes and draws the most recent lines onto a
// framebuffer. It implements io.Writer and can be registered as a write
// backend via drivers.NewSystemWriter.
type Console struct {
	fb     draw.Image
	face   font.Face
	buf    bytes.Buffer
	scroll int // lines scrolled back from the bottom
}

// NewConsole returns a console rendering into fb with the builtin 7x13
// face.
func NewConsole(fb draw.Image) *Console {
	return &Console{fb: fb, face: basicfont.Face7x13}
}

// SetFace replaces the console font.
func (v *Console) SetFace(face font.Face) {
	v.face = face
	v.Draw()
}

func (v *Console) Write(p []byte) (n int, err error) {
	n, err = v.buf.Write(p)
	v.Draw()
	return
}

// Scroll moves the view by delta lines, positive scrolling back in history,
// clamped to the available lines.
func (v *Console) Scroll(delta int) {
	v.scroll += delta
	v.Draw()
}

// Draw renders the visible tail of the console onto the framebuffer.
func (v *Console) Draw() {
	bounds := v.fb.Bounds()
	metrics := v.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		return
	}
	maxLines := bounds.Dy() / lineHeight

	lines := bytes.Split(v.buf.Bytes(), []byte{'\n'})
	// A trailing newline leaves an empty last element, which is not a
	// line of its own.
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}

	v.scroll = min(max(0, v.scroll), max(0, len(lines)-maxLines))
	end := len(lines) - v.scroll
	start := max(0, end-maxLines)
	visible := lines[start:end]

	draw.Draw(v.fb, bounds, image.Black, image.Point{}, draw.Src)
	d := font.Drawer{Dst: v.fb, Src: image.White, Face: v.face}
	y := bounds.Min.Y + metrics.Ascent.Ceil()
	for _, line := range visible {
		d.Dot = fixed.P(bounds.Min.X, y)
		d.DrawString(decode(line))
		y += lineHeight
	}
}

// decode maps console bytes to displayable runes via code page 437, keeping
// the classic box drawing and symbol set available on a byte stream.
func decode(p []byte) string {
	var sb strings.Builder
	for _, c := range p {
		switch c {
		case '\r':
			continue
		case '\t':
			sb.WriteString("        ")
			continue
		}
		sb.WriteRune(charmap.CodePage437.DecodeByte(c))
	}
	return sb.String()
}
