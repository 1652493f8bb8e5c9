package layout

import "math"

// PointPolygonDistance returns the signed distance from p to the closed
// polygon through poly: positive inside, negative outside and zero on the
// contour. An empty polygon is infinitely far away.
func PointPolygonDistance(p Point, poly []Point) float64 {
	if len(poly) == 0 {
		return math.Inf(-1)
	}

	px, py := float64(p.X), float64(p.Y)
	minSq := math.Inf(1)
	inside := false

	j := len(poly) - 1
	for i := range poly {
		a, b := poly[j], poly[i]
		if d := segmentDistSq(px, py, a, b); d < minSq {
			minSq = d
		}
		ay, by := float64(a.Y), float64(b.Y)
		if (by > py) != (ay > py) {
			ax, bx := float64(a.X), float64(b.X)
			cross := (ax-bx)*(py-by)/(ay-by) + bx
			if px < cross {
				inside = !inside
			}
		}
		j = i
	}

	dist := math.Sqrt(minSq)
	if dist == 0 || inside {
		return dist
	}
	return -dist
}

func segmentDistSq(px, py float64, a, b Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-ax, float64(b.Y)-ay
	t := 0.0
	if l := dx*dx + dy*dy; l > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / l
		t = math.Max(0, math.Min(1, t))
	}
	cx, cy := ax+t*dx-px, ay+t*dy-py
	return cx*cx + cy*cy
}
