package gallows

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/vector"
)

// Board geometry, in pixels of a Size×Size canvas.
const (
	Size      = 200
	lineWidth = 2
)

var ink = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

type point struct{ x, y float32 }

type segment struct{ a, b point }

// frame is the base, post, beam and rope.
var frame = []segment{
	{point{20, 180}, point{180, 180}},
	{point{40, 180}, point{40, 20}},
	{point{40, 20}, point{100, 20}},
	{point{100, 20}, point{100, 40}},
}

// head is a circle; the other parts are single segments.
var (
	headCenter = point{100, 60}
	headRadius = float32(20)
)

var limbs = map[Part]segment{
	Torso:    {point{100, 80}, point{100, 130}},
	LeftArm:  {point{100, 80}, point{70, 100}},
	RightArm: {point{100, 80}, point{130, 100}},
	LeftLeg:  {point{100, 130}, point{80, 160}},
	RightLeg: {point{100, 130}, point{120, 160}},
}

// ASCII draws the stage as text, one line per row.
func ASCII(attempts int) string {
	pick := func(p Part, s string) string {
		if Has(attempts, p) {
			return s
		}
		return " "
	}
	rows := []string{
		"  +---+",
		"  |   |",
		"  |   " + pick(Head, "O"),
		"  |  " + pick(LeftArm, "/") + pick(Torso, "|") + pick(RightArm, `\`),
		"  |  " + pick(LeftLeg, "/") + " " + pick(RightLeg, `\`),
		"  |",
		"=========",
	}
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(rows, "\n") + "\n"
}

// SVG draws the stage as a standalone SVG document.
func SVG(attempts int) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, Size, Size, Size, Size)
	fmt.Fprintf(&b, `<g stroke="#333" stroke-width="%d" fill="none">`, lineWidth)
	line := func(s segment) {
		fmt.Fprintf(&b, `<line x1="%g" y1="%g" x2="%g" y2="%g"/>`, s.a.x, s.a.y, s.b.x, s.b.y)
	}
	for _, s := range frame {
		line(s)
	}
	for _, p := range Parts(attempts) {
		if p == Head {
			fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g"/>`, headCenter.x, headCenter.y, headRadius)
			continue
		}
		line(limbs[p])
	}
	b.WriteString(`</g></svg>`)
	return b.Bytes()
}

// PNG rasterizes the stage onto a white Size×Size image and encodes it to w.
func PNG(w io.Writer, attempts int) error {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	z := vector.NewRasterizer(Size, Size)
	for _, s := range frame {
		stroke(z, s)
	}
	for _, p := range Parts(attempts) {
		if p == Head {
			strokeCircle(z, headCenter, headRadius)
			continue
		}
		stroke(z, limbs[p])
	}
	z.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{})
	return png.Encode(w, img)
}

// stroke adds s as a lineWidth-wide quad. All quads share one winding
// direction so overlaps at joints saturate instead of cancelling.
func stroke(z *vector.Rasterizer, s segment) {
	dx, dy := s.b.x-s.a.x, s.b.y-s.a.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*lineWidth/2, dx/l*lineWidth/2
	z.MoveTo(s.a.x+nx, s.a.y+ny)
	z.LineTo(s.b.x+nx, s.b.y+ny)
	z.LineTo(s.b.x-nx, s.b.y-ny)
	z.LineTo(s.a.x-nx, s.a.y-ny)
	z.ClosePath()
}

func strokeCircle(z *vector.Rasterizer, c point, r float32) {
	const steps = 48
	prev := point{c.x + r, c.y}
	for i := 1; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		next := point{c.x + r*float32(math.Cos(a)), c.y + r*float32(math.Sin(a))}
		stroke(z, segment{prev, next})
		prev = next
	}
}
