package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/planar"
)

// DefaultStroke is the line width, in pixels, used by NewRaster.
const DefaultStroke = 2.0

// Raster is a Canvas backed by an *image.RGBA with a white background.
type Raster struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	stroke  float64
	caption []string
}

// NewRaster allocates a w×h white surface.
func NewRaster(w, h int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	thetabrick.Logger().Debug("canvas: raster allocated", "width", w, "height", h)
	return &Raster{img: img, z: vector.NewRasterizer(0, 0), stroke: DefaultStroke}
}

// SetStroke changes the line width for later calls. Non-positive widths are ignored.
func (r *Raster) SetStroke(w float64) {
	if w > 0 {
		r.stroke = w
	}
}

// Image exposes the underlying surface.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Caption appends one line of text rendered in the top-left corner on Save.
func (r *Raster) Caption(line string) {
	r.caption = append(r.caption, line)
}

func (r *Raster) DrawArc(centre planar.Point, radius int, start, end float64, c color.Color) {
	if degenerateArc(radius, start, end) {
		return
	}
	pts := arcSamples(centre, radius, start, end)
	for i := 1; i < len(pts); i++ {
		r.segment(pts[i-1], pts[i], c)
	}
}

func (r *Raster) DrawLine(a, b planar.Point, c color.Color) {
	if a == b {
		return
	}
	ax, ay := a.Float()
	bx, by := b.Float()
	r.segment([2]float64{ax, ay}, [2]float64{bx, by}, c)
}

func (r *Raster) DrawOutline(poly *planar.Polygon, c color.Color) {
	if !outlineable(poly) {
		return
	}
	n := poly.Len()
	for i := 0; i < n; i++ {
		a, b := poly.Points[i], poly.Points[(i+1)%n]
		if a == b {
			continue
		}
		ax, ay := a.Float()
		bx, by := b.Float()
		r.segment([2]float64{ax, ay}, [2]float64{bx, by}, c)
	}
}

func (r *Raster) DrawFilledPolygon(poly *planar.Polygon, c color.Color) {
	if !fillable(poly) {
		return
	}
	pts := make([][2]float64, poly.Len())
	for i, p := range poly.Points {
		x, y := p.Float()
		pts[i] = [2]float64{x, y}
	}
	r.fill(pts, c)
}

// segment strokes a→b as a quad of the current stroke width.
func (r *Raster) segment(a, b [2]float64, c color.Color) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*r.stroke/2, dx/l*r.stroke/2
	r.fill([][2]float64{
		{a[0] + nx, a[1] + ny},
		{b[0] + nx, b[1] + ny},
		{b[0] - nx, b[1] - ny},
		{a[0] - nx, a[1] - ny},
	}, c)
}

// fill rasterises a closed path using a rasteriser sized to the path's
// bounding box clipped to the image, so cost follows the shape, not the surface.
func (r *Raster) fill(pts [][2]float64, c color.Color) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	r.z.MoveTo(float32(pts[0][0]-ox), float32(pts[0][1]-oy))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, box, image.NewUniform(c), image.Point{})
}

var regularFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
})

func (r *Raster) drawCaption() error {
	if len(r.caption) == 0 {
		return nil
	}
	face, err := regularFace()
	if err != nil {
		return fmt.Errorf("canvas: load caption face: %w", err)
	}
	d := font.Drawer{Dst: r.img, Src: image.Black, Face: face}
	lh := face.Metrics().Height.Ceil()
	for i, line := range r.caption {
		d.Dot = fixed.P(8, 8+lh*(i+1))
		d.DrawString(line)
	}
	r.caption = nil
	return nil
}

// Save renders any pending caption and writes the surface as PNG.
func (r *Raster) Save(path string) error {
	if err := r.drawCaption(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("canvas: write %s: %w", path, err)
	}
	thetabrick.Logger().Info("canvas: saved png", "path", path)
	return f.Close()
}
