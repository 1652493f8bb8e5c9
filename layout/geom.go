// Package layout holds the arena geometry and the rejection-sampling
// placement used to put food, walls and obstacles on the board.
package layout

import "math"

// Arena dimensions in pixels. Origin is the top-left corner, x grows to the
// right and y grows downwards.
const (
	ArenaWidth  = 1280
	ArenaHeight = 720
)

// Point is an integer pixel coordinate inside the arena.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dist returns the euclidean distance between two points.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Size is a width and height in pixels.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Rect is an axis-aligned rectangle. It spans [X, X+W) horizontally and
// [Y, Y+H) vertically.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Overlaps reports whether both axis projections of r and other overlap
// strictly. Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() <= other.X || other.Right() <= r.X {
		return false
	}
	if r.Bottom() <= other.Y || other.Bottom() <= r.Y {
		return false
	}
	return true
}

// Contains tests p against the rectangle, closed on the min edges and open on
// the max edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsClosed tests p against the rectangle including all four edges.
func (r Rect) ContainsClosed(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// RectanglesOverlap is the half-open overlap test between two rectangles.
func RectanglesOverlap(a, b Rect) bool { return a.Overlaps(b) }

// Anchor says which point of a footprint a placed position refers to.
type Anchor int

const (
	// TopLeft positions name the rectangle's top-left corner (walls,
	// obstacles).
	TopLeft Anchor = iota
	// Center positions name the rectangle's center (food).
	Center
)

// Footprint is the rectangle an entity of a given size occupies once placed.
type Footprint struct {
	Size   Size
	Anchor Anchor
}

// At returns the rectangle the footprint covers at position p. Centered
// footprints extend half the size (rounded down) to each side.
func (f Footprint) At(p Point) Rect {
	if f.Anchor == Center {
		hw, hh := f.Size.W/2, f.Size.H/2
		return Rect{X: p.X - hw, Y: p.Y - hh, W: 2 * hw, H: 2 * hh}
	}
	return Rect{X: p.X, Y: p.Y, W: f.Size.W, H: f.Size.H}
}
