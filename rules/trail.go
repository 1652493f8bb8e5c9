package rules

import "github.com/battlesnakeio/holosnake/layout"

// Trail is the snake body: head positions in traversal order plus the scaled
// length of each segment between consecutive points. Lengths always has one
// entry fewer than Points once the trail is non-empty.
type Trail struct {
	Points  []layout.Point
	Lengths []float64
	Length  float64
}

// Start begins the trail, or continues it without a connecting segment.
func (t *Trail) Start(p layout.Point) {
	t.Points = append(t.Points, p)
}

// Extend appends p joined to the previous point by a segment of length seg.
func (t *Trail) Extend(p layout.Point, seg float64) {
	t.Points = append(t.Points, p)
	t.Lengths = append(t.Lengths, seg)
	t.Length += seg
}

// Trim drops the oldest point and segment until Length is within allowed or
// no segments remain. It returns the number of segments removed.
func (t *Trail) Trim(allowed float64) int {
	removed := 0
	for t.Length > allowed && len(t.Lengths) > 0 {
		t.Length -= t.Lengths[0]
		t.Lengths = t.Lengths[1:]
		t.Points = t.Points[1:]
		removed++
	}
	if len(t.Lengths) == 0 {
		t.Length = 0
	}
	return removed
}

// Head returns the most recent point.
func (t *Trail) Head() (layout.Point, bool) {
	if len(t.Points) == 0 {
		return layout.Point{}, false
	}
	return t.Points[len(t.Points)-1], true
}

// Reset empties the trail.
func (t *Trail) Reset() {
	t.Points = nil
	t.Lengths = nil
	t.Length = 0
}
