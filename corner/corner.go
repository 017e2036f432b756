// Package corner implements the hot corner detection state machine.
package corner

import "hotcorner/platform"

// Region is a rectangular screen zone with inclusive bounds.
type Region struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// RegionAt builds a square region of the given size anchored at (x, y).
func RegionAt(x, y, size int32) Region {
	return Region{Left: x, Top: y, Right: x + size, Bottom: y + size}
}

// Contains reports whether p lies within the region. Bounds are
// inclusive, so a position sampled exactly on the edge still counts.
func (r Region) Contains(p platform.Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

type state int

const (
	idle state = iota
	fired
)

// Detector decides, once per poll, whether the cursor entering its
// region should trigger. After firing it stays quiet until a poll
// observes the cursor outside the region, so each dwell triggers at
// most once.
type Detector struct {
	region Region
	state  state
}

// NewDetector creates a detector armed for the given region.
func NewDetector(region Region) *Detector {
	return &Detector{region: region}
}

// Poll advances the state machine with a sampled cursor position and
// returns true exactly on the tick that should trigger.
func (d *Detector) Poll(p platform.Point) bool {
	if !d.region.Contains(p) {
		d.state = idle
		return false
	}

	if d.state == fired {
		// Still dwelling in the corner; already triggered.
		return false
	}

	d.state = fired
	return true
}

// Reset re-arms the detector as if the cursor had been observed outside
// the region. The control loop uses it when a tick's cursor position
// cannot be read.
func (d *Detector) Reset() {
	d.state = idle
}
