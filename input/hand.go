// Package input turns tracker output into the per-frame input the game
// consumes: an optional pointer plus two gated gesture signals.
package input

import "github.com/battlesnakeio/holosnake/layout"

// Landmark indexes of a tracked hand.
const (
	Wrist     = 0
	ThumbIP   = 3
	ThumbTip  = 4
	IndexPIP  = 6
	IndexTip  = 8
	MiddlePIP = 10
	MiddleTip = 12
	RingPIP   = 14
	RingTip   = 16
	PinkyMCP  = 17
	PinkyPIP  = 18
	PinkyTip  = 20

	LandmarkCount = 21
)

// PinchDistance is the thumb to index tip distance below which a pinch is
// detected.
const PinchDistance = 30.0

// Hand is one tracked hand in arena coordinates.
type Hand struct {
	Landmarks [LandmarkCount]layout.Point
}

// Frame is the input for a single tick. A nil Pointer means no hand is
// visible.
type Frame struct {
	Pointer *layout.Point
	Pinch   bool
	Fist    bool
}

// FingersUp reports, thumb first, which digits are extended.
func (h *Hand) FingersUp() [5]bool {
	lm := h.Landmarks
	var up [5]bool
	up[0] = lm[ThumbTip].Dist(lm[PinkyMCP]) > lm[ThumbIP].Dist(lm[PinkyMCP])
	for i, j := range [][2]int{
		{IndexTip, IndexPIP},
		{MiddleTip, MiddlePIP},
		{RingTip, RingPIP},
		{PinkyTip, PinkyPIP},
	} {
		up[i+1] = lm[j[0]].Y < lm[j[1]].Y
	}
	return up
}

// DetectPinch reports whether the thumb and index tips are touching.
func DetectPinch(h *Hand) bool {
	if h == nil {
		return false
	}
	return h.Landmarks[IndexTip].Dist(h.Landmarks[ThumbTip]) < PinchDistance
}

// DetectFist reports whether every digit is closed.
func DetectFist(h *Hand) bool {
	if h == nil {
		return false
	}
	for _, up := range h.FingersUp() {
		if up {
			return false
		}
	}
	return true
}

// FromHand builds an ungated frame from a tracked hand, pointing with the
// index tip. A nil hand yields an empty frame.
func FromHand(h *Hand) Frame {
	if h == nil {
		return Frame{}
	}
	p := h.Landmarks[IndexTip]
	return Frame{
		Pointer: &p,
		Pinch:   DetectPinch(h),
		Fist:    DetectFist(h),
	}
}
