package layout

// Rand is the random source used for placement. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Bounds is the inclusive range positions are sampled from.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Sample draws a uniformly distributed position inside b.
func (b Bounds) Sample(r Rand) Point {
	return Point{
		X: b.MinX + r.Intn(b.MaxX-b.MinX+1),
		Y: b.MinY + r.Intn(b.MaxY-b.MinY+1),
	}
}

// PlacementResult is the outcome of a single placement. Degraded is set when
// every attempt overlapped something and Position is the last candidate drawn.
type PlacementResult struct {
	Position Point
	Attempts int
	Degraded bool
}

func overlapsAny(r Rect, others []Rect) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

// PlaceNonOverlapping samples up to maxAttempts positions and keeps the ones
// whose footprint overlaps neither existing nor a previously accepted
// position. It stops once count positions have been accepted. Running out of
// attempts is not an error, fewer positions are returned.
func PlaceNonOverlapping(r Rand, count int, bounds Bounds, fp Footprint, existing []Rect, maxAttempts int) []Point {
	placed := []Point{}
	taken := append([]Rect{}, existing...)
	for tries := 0; len(placed) < count && tries < maxAttempts; tries++ {
		p := bounds.Sample(r)
		rect := fp.At(p)
		if overlapsAny(rect, taken) {
			continue
		}
		placed = append(placed, p)
		taken = append(taken, rect)
	}
	return placed
}

// PlaceSingleAvoiding samples positions until one whose footprint overlaps
// none of avoid is found. After maxAttempts failures the last candidate is
// returned anyway with Degraded set.
func PlaceSingleAvoiding(r Rand, bounds Bounds, fp Footprint, avoid []Rect, maxAttempts int) PlacementResult {
	var res PlacementResult
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for res.Attempts < maxAttempts {
		res.Attempts++
		res.Position = bounds.Sample(r)
		if !overlapsAny(fp.At(res.Position), avoid) {
			return res
		}
	}
	res.Degraded = true
	return res
}
