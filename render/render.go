package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/katalvlaran/ndtrace/lattice"
	"github.com/katalvlaran/ndtrace/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrNoPath indicates a frame without any path point.
	ErrNoPath = errors.New("render: frame has no path")

	// ErrBadAxis indicates a projection axis outside the frame's dimension.
	ErrBadAxis = errors.New("render: projection axis out of range")

	// ErrNotSpatial indicates a frame that is not 3-D where one is required.
	ErrNotSpatial = errors.New("render: oblique view needs a 3-D frame")
)

// DefaultSize is the side length of saved images.
const DefaultSize = 6 * vg.Inch

var (
	obstacleColor     = color.NRGBA{A: 255}
	frontColor        = color.NRGBA{G: 200, B: 220, A: 90}
	pathColor         = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	intersectionColor = color.NRGBA{R: 220, A: 255}
	latticeColor      = color.NRGBA{R: 130, G: 40, B: 170, A: 255}
	startColor        = color.NRGBA{G: 160, A: 255}
	goalColor         = color.NRGBA{B: 220, A: 255}
)

// Frame is the drawable output of one traversal.
type Frame struct {
	Start             vec.Point
	Goal              vec.Point
	Path              []vec.Point
	FrontCellsHistory [][]vec.Cell
	Intersections     []vec.Point
	LatticeHistory    []vec.Cell
	Obstacles         []vec.Cell
}

// FromResult builds a Frame from a traversal result.
func FromResult(start, goal vec.Point, obstacles []vec.Cell, res *lattice.Result) Frame {
	return Frame{
		Start:             start,
		Goal:              goal,
		Path:              res.Path,
		FrontCellsHistory: res.FrontCellsHistory,
		Intersections:     res.Intersections,
		LatticeHistory:    res.LatticeHistory,
		Obstacles:         obstacles,
	}
}

// Dim returns the dimension of the frame's start point.
func (f Frame) Dim() int { return len(f.Start) }

// Projection is a pair of axes to draw against each other.
type Projection struct {
	X, Y int
	Name string
}

// Projections lists the planes Save draws for a frame of dimension dim.
// A 3-D frame also gets an oblique view; see Oblique.
func Projections(dim int) []Projection {
	switch {
	case dim <= 0:
		return nil
	case dim == 1:
		return []Projection{{X: 0, Y: 1, Name: "x"}}
	case dim == 2:
		return []Projection{{X: 0, Y: 1, Name: "xy"}}
	default:
		return []Projection{
			{X: 0, Y: 1, Name: axisName(0) + axisName(1)},
			{X: 1, Y: 2, Name: axisName(1) + axisName(2)},
			{X: 0, Y: 2, Name: axisName(0) + axisName(2)},
		}
	}
}

func axisName(a int) string {
	if a < 3 {
		return string("xyz"[a])
	}
	return fmt.Sprintf("a%d", a)
}

// at returns coordinate a of v, or 0 past its end. A 1-D frame is drawn
// against this zero axis.
func at[T int | float64](v []T, a int) float64 {
	if a >= len(v) {
		return 0
	}
	return float64(v[a])
}

// Plot2D draws f projected onto axes (dimX, dimY).
//
// Returns ErrNoPath for an empty path and ErrBadAxis when an axis is outside
// the frame, or both axes are the same. A 1-D frame accepts dimY == 1.
func Plot2D(f Frame, dimX, dimY int, title string) (*plot.Plot, error) {
	if len(f.Path) == 0 {
		return nil, ErrNoPath
	}
	n := f.Dim()
	limitY := n
	if n == 1 {
		limitY = 2
	}
	if dimX < 0 || dimX >= n || dimY < 0 || dimY >= limitY || dimX == dimY {
		return nil, fmt.Errorf("%w: (%d,%d) for dimension %d", ErrBadAxis, dimX, dimY, n)
	}

	return plotView(f, planar(dimX, dimY), title)
}

// obliqueDepth is how far one unit of z shifts a point along x and along y
// in the oblique view: half depth at 45°.
const obliqueDepth = math.Sqrt2 / 4

// Oblique draws a 3-D frame in cabinet projection: z recedes up and to the
// right, and every cell is drawn as the outline of its cube.
//
// Returns ErrNoPath for an empty path and ErrNotSpatial unless f is 3-D.
func Oblique(f Frame, title string) (*plot.Plot, error) {
	if len(f.Path) == 0 {
		return nil, ErrNoPath
	}
	if f.Dim() != 3 {
		return nil, fmt.Errorf("%w: dimension %d", ErrNotSpatial, f.Dim())
	}

	return plotView(f, oblique(obliqueDepth), title)
}

// view maps frame coordinates onto the plot plane.
type view struct {
	xLabel, yLabel string
	point          func(p vec.Point) plotter.XY
	corner         func(c vec.Cell) plotter.XY
	outline        func(corner plotter.XY) plotter.XYs
}

func planar(dimX, dimY int) view {
	return view{
		xLabel: axisName(dimX),
		yLabel: axisName(dimY),
		point: func(p vec.Point) plotter.XY {
			return plotter.XY{X: at(p, dimX), Y: at(p, dimY)}
		},
		corner: func(c vec.Cell) plotter.XY {
			return plotter.XY{X: at(c, dimX), Y: at(c, dimY)}
		},
		outline: func(o plotter.XY) plotter.XYs {
			return plotter.XYs{{X: o.X, Y: o.Y}, {X: o.X + 1, Y: o.Y}, {X: o.X + 1, Y: o.Y + 1}, {X: o.X, Y: o.Y + 1}}
		},
	}
}

func oblique(k float64) view {
	return view{
		xLabel: "x",
		yLabel: "y",
		point: func(p vec.Point) plotter.XY {
			z := at(p, 2)
			return plotter.XY{X: at(p, 0) + k*z, Y: at(p, 1) + k*z}
		},
		corner: func(c vec.Cell) plotter.XY {
			z := at(c, 2)
			return plotter.XY{X: at(c, 0) + k*z, Y: at(c, 1) + k*z}
		},
		// Silhouette of the unit cube whose near lower-left corner is o.
		outline: func(o plotter.XY) plotter.XYs {
			return plotter.XYs{
				{X: o.X, Y: o.Y},
				{X: o.X + 1, Y: o.Y},
				{X: o.X + 1 + k, Y: o.Y + k},
				{X: o.X + 1 + k, Y: o.Y + 1 + k},
				{X: o.X + k, Y: o.Y + 1 + k},
				{X: o.X, Y: o.Y + 1},
			}
		},
	}
}

func plotView(f Frame, v view, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = v.xLabel
	p.Y.Label.Text = v.yLabel
	p.Add(plotter.NewGrid())

	if err := addCells(p, f.Obstacles, v, obstacleColor, "obstacle"); err != nil {
		return nil, err
	}
	var fronts []vec.Cell
	for _, step := range f.FrontCellsHistory {
		fronts = append(fronts, step...)
	}
	if err := addCells(p, fronts, v, frontColor, "front cell"); err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(pointsXY(f.Path, v))
	if err != nil {
		return nil, fmt.Errorf("render: path: %w", err)
	}
	line.Color = pathColor
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("path", line)

	if len(f.Intersections) > 0 {
		if err := addMarkers(p, pointsXY(f.Intersections, v), draw.CrossGlyph{}, intersectionColor, 3, "intersection"); err != nil {
			return nil, err
		}
	}
	if len(f.LatticeHistory) > 0 {
		if err := addMarkers(p, cellsXY(f.LatticeHistory, v), draw.BoxGlyph{}, latticeColor, 2.5, "lattice"); err != nil {
			return nil, err
		}
	}
	if err := addMarkers(p, pointsXY([]vec.Point{f.Start}, v), draw.CircleGlyph{}, startColor, 4, "start"); err != nil {
		return nil, err
	}
	if len(f.Goal) == f.Dim() {
		if err := addMarkers(p, pointsXY([]vec.Point{f.Goal}, v), draw.CircleGlyph{}, goalColor, 4, "goal"); err != nil {
			return nil, err
		}
	}

	// Whole cells with a one-cell margin.
	p.X.Min, p.X.Max = math.Floor(p.X.Min)-1, math.Ceil(p.X.Max)+1
	p.Y.Min, p.Y.Max = math.Floor(p.Y.Min)-1, math.Ceil(p.Y.Max)+1
	p.X.Tick.Marker = integerTicks{}
	p.Y.Tick.Marker = integerTicks{}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// Save writes one PNG per projection of f into dir, plus an oblique view for
// a 3-D frame. Files are named <Slug(name)>_<view>.png and titled after
// title. It returns the written paths.
func Save(f Frame, dir, name, title string, size vg.Length) ([]string, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir: %w", err)
	}

	base := Slug(name)
	var written []string
	write := func(p *plot.Plot, suffix string) error {
		file := filepath.Join(dir, fmt.Sprintf("%s_%s.png", base, suffix))
		if err := p.Save(size, size, file); err != nil {
			return fmt.Errorf("render: save %s: %w", file, err)
		}
		written = append(written, file)
		return nil
	}

	for _, proj := range Projections(f.Dim()) {
		p, err := Plot2D(f, proj.X, proj.Y, fmt.Sprintf("%s (%s)", title, strings.ToUpper(proj.Name)))
		if err != nil {
			return written, err
		}
		if err := write(p, proj.Name); err != nil {
			return written, err
		}
	}
	if f.Dim() == 3 {
		p, err := Oblique(f, title+" (3D)")
		if err != nil {
			return written, err
		}
		if err := write(p, "oblique"); err != nil {
			return written, err
		}
	}

	return written, nil
}

// Slug turns a scenario label into a file name stem.
func Slug(s string) string {
	var b strings.Builder
	lastSep := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			b.WriteByte('_')
			lastSep = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "trace"
	}

	return out
}

func pointsXY(pts []vec.Point, v view) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = v.point(p)
	}
	return xys
}

func cellsXY(cells []vec.Cell, v view) plotter.XYs {
	xys := make(plotter.XYs, len(cells))
	for i, c := range cells {
		xys[i] = v.corner(c)
	}
	return xys
}

// addCells draws every distinct projected cell as a filled outline.
func addCells(p *plot.Plot, cells []vec.Cell, v view, fill color.Color, label string) error {
	seen := make(map[plotter.XY]bool, len(cells))
	var first *plotter.Polygon
	for _, c := range cells {
		o := v.corner(c)
		if seen[o] {
			continue
		}
		seen[o] = true

		sq, err := plotter.NewPolygon(v.outline(o))
		if err != nil {
			return fmt.Errorf("render: %s cell %v: %w", label, c, err)
		}
		sq.Color = fill
		sq.LineStyle.Width = 0
		p.Add(sq)
		if first == nil {
			first = sq
		}
	}
	if first != nil {
		p.Legend.Add(label, first)
	}

	return nil
}

func addMarkers(p *plot.Plot, xys plotter.XYs, shape draw.GlyphDrawer, c color.Color, radius float64, label string) error {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("render: %s: %w", label, err)
	}
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(radius)
	p.Add(s)
	p.Legend.Add(label, s)

	return nil
}

// integerTicks labels every integer when the range is small and thins the
// labels out otherwise.
type integerTicks struct{}

func (integerTicks) Ticks(lo, hi float64) []plot.Tick {
	step := math.Max(1, math.Ceil((hi-lo)/20))
	var ticks []plot.Tick
	for v := math.Ceil(lo); v <= hi; v++ {
		t := plot.Tick{Value: v}
		if math.Mod(v, step) == 0 {
			t.Label = fmt.Sprintf("%g", v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
