// Drawing primitives over the packed bitmap. Every routine clips or ignores
// out-of-range geometry instead of failing: a frame is composed from many
// shapes and one bad input must not abort the rest of the frame.

package raster

import "math"

// Point is a pixel coordinate. Callers pass floats straight from projection;
// every primitive rounds before stepping, since letting float deltas drive
// the Bresenham loop can degenerate the step direction.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// DrawLine draws a line from p1 to p2 using integer Bresenham stepping. A
// width greater than 1 stamps a filled disc of radius width/2 at every
// stepped pixel, approximating a thick line.
func (b *Bitmap) DrawLine(p1, p2 Point, width int) {
	b.line(p1, p2, width, b.width)
}

// DrawLineClipped is DrawLine with every pixel at x >= maxX skipped. Used by
// split-screen layouts where part of the panel is reserved for fixed UI.
func (b *Bitmap) DrawLineClipped(p1, p2 Point, width, maxX int) {
	if maxX > b.width {
		maxX = b.width
	}
	b.line(p1, p2, width, maxX)
}

func (b *Bitmap) line(p1, p2 Point, width, maxX int) {
	x0, y0 := p1.Round()
	x1, y1 := p2.Round()

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		b.plot(x0, y0, width, maxX)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Bitmap) plot(x, y, width, maxX int) {
	if width <= 1 {
		if x < maxX {
			b.SetPixel(x, y, true)
		}
		return
	}
	b.disc(x, y, width/2, maxX)
}

// DrawCircle draws a one-pixel circle outline using the integer midpoint
// algorithm, plotting the eight symmetric points per step.
func (b *Bitmap) DrawCircle(center Point, radius float64) {
	cx, cy := center.Round()
	r := int(math.Round(radius))
	if r < 0 {
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		b.SetPixel(cx+x, cy+y, true)
		b.SetPixel(cx+y, cy+x, true)
		b.SetPixel(cx-y, cy+x, true)
		b.SetPixel(cx-x, cy+y, true)
		b.SetPixel(cx-x, cy-y, true)
		b.SetPixel(cx-y, cy-x, true)
		b.SetPixel(cx+y, cy-x, true)
		b.SetPixel(cx+x, cy-y, true)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawFilledCircle fills a disc. The fill walks the same midpoint loop as
// DrawCircle and fills spans between the symmetric octant bounds, so every
// pixel the outline plots is covered by the fill at the same center and
// radius; this is the routine markers and icons are built from.
func (b *Bitmap) DrawFilledCircle(center Point, radius float64) {
	cx, cy := center.Round()
	b.disc(cx, cy, int(math.Round(radius)), b.width)
}

// DrawFilledCircleClipped is DrawFilledCircle with every pixel at x >= maxX
// skipped.
func (b *Bitmap) DrawFilledCircleClipped(center Point, radius float64, maxX int) {
	if maxX > b.width {
		maxX = b.width
	}
	cx, cy := center.Round()
	b.disc(cx, cy, int(math.Round(radius)), maxX)
}

func (b *Bitmap) disc(cx, cy, r, maxX int) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		b.spanClipped(cx-x, cx+x+1, cy+y, maxX)
		b.spanClipped(cx-x, cx+x+1, cy-y, maxX)
		b.spanClipped(cx-y, cx+y+1, cy+x, maxX)
		b.spanClipped(cx-y, cx+y+1, cy-x, maxX)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (b *Bitmap) spanClipped(x0, x1, y, maxX int) {
	if x1 > maxX {
		x1 = maxX
	}
	b.fillSpan(x0, x1, y)
}

// DrawHorizontalLine fills a length x thickness rectangle whose top-left
// pixel is (x, y).
func (b *Bitmap) DrawHorizontalLine(x, y, length, thickness int) {
	for t := 0; t < thickness; t++ {
		b.fillSpan(x, x+length, y+t)
	}
}

// DrawVerticalLine fills a thickness x length rectangle whose top-left pixel
// is (x, y).
func (b *Bitmap) DrawVerticalLine(x, y, length, thickness int) {
	for dy := 0; dy < length; dy++ {
		b.fillSpan(x, x+thickness, y+dy)
	}
}

// fillSpan paints the pixels [x0, x1) on row y black. Long spans go through
// byte-granularity writes: a masked partial head byte, whole 0x00 interior
// bytes, and a masked partial tail byte. Pixel-by-pixel writes dominate the
// cost of long fills (progress bars, thick road caps), and the byte path must
// stay bit-identical to the naive loop.
func (b *Bitmap) fillSpan(x0, x1, y int) {
	if y < 0 || y >= b.height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > b.width {
		x1 = b.width
	}
	if x0 >= x1 {
		return
	}

	if x1-x0 < bitsPerWord {
		for x := x0; x < x1; x++ {
			b.SetPixel(x, y, true)
		}
		return
	}

	row := y * b.stride
	head := x0 / bitsPerWord
	tail := (x1 - 1) / bitsPerWord

	headMask := byte(0xFF) >> (x0 % bitsPerWord)
	tailMask := byte(0xFF) << (bitsPerWord - 1 - (x1-1)%bitsPerWord)

	if head == tail {
		b.data[row+head] &^= headMask & tailMask
		return
	}

	b.data[row+head] &^= headMask
	for i := head + 1; i < tail; i++ {
		b.data[row+i] = 0x00
	}
	b.data[row+tail] &^= tailMask
}

// FillTriangle fills the triangle p1 p2 p3 by sorting the rounded vertices by
// y and interpolating the x interval along the two active edges per scanline.
// Collinear input degrades to a thin line or nothing.
func (b *Bitmap) FillTriangle(p1, p2, p3 Point) {
	type vertex struct{ x, y int }
	v := make([]vertex, 3)
	v[0].x, v[0].y = p1.Round()
	v[1].x, v[1].y = p2.Round()
	v[2].x, v[2].y = p3.Round()

	if v[1].y < v[0].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[2].y < v[1].y {
		v[1], v[2] = v[2], v[1]
	}
	if v[1].y < v[0].y {
		v[0], v[1] = v[1], v[0]
	}
	top, mid, bottom := v[0], v[1], v[2]

	// only walk the scanlines the bitmap can show; a mostly off-screen
	// triangle must cost pixels touched, not its full height
	startY, endY := top.y, bottom.y
	if startY < 0 {
		startY = 0
	}
	if endY >= b.height {
		endY = b.height - 1
	}

	for y := startY; y <= endY; y++ {
		xa := interpolateX(top.x, top.y, bottom.x, bottom.y, y)
		var xb float64
		if y < mid.y {
			xb = interpolateX(top.x, top.y, mid.x, mid.y, y)
		} else {
			xb = interpolateX(mid.x, mid.y, bottom.x, bottom.y, y)
		}
		if xa > xb {
			xa, xb = xb, xa
		}
		b.fillSpan(int(math.Round(xa)), int(math.Round(xb))+1, y)
	}
}

// interpolateX returns the x of the edge (x1,y1)-(x2,y2) at scanline y. A
// horizontal edge returns x1; that is the defined fallback, not an error.
func interpolateX(x1, y1, x2, y2, y int) float64 {
	if y1 == y2 {
		return float64(x1)
	}
	return float64(x1) + float64(x2-x1)*float64(y-y1)/float64(y2-y1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
