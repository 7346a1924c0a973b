package hull

import (
	"fmt"

	"github.com/jrversteegh/linesplan/geom"
)

// Frame is one transverse half-section of a lines plan.
//
// Yz runs from the baseline (small z) upward to the deck and then inward
// toward the centerline; at upright attitude y >= 0 throughout. Chines
// holds strictly increasing indices into Yz marking slope discontinuities
// (knuckles, deck corners); 0 < c < len(Yz)-1 for every chine.
type Frame struct {
	X      float64
	Yz     geom.Polyline2
	Chines []int
}

// NewFrame builds a frame at station x from the given half-section points.
func NewFrame(x float64, yz geom.Polyline2) *Frame {
	pts := make(geom.Polyline2, len(yz))
	copy(pts, yz)
	return &Frame{X: x, Yz: pts}
}

// Len returns the number of points in the frame.
func (f *Frame) Len() int {
	return len(f.Yz)
}

// Scale multiplies every point's y and z by factor.
func (f *Frame) Scale(factor float64) {
	for i := range f.Yz {
		f.Yz[i].Y *= factor
		f.Yz[i].Z *= factor
	}
}

// Offset moves every point of the frame by v, in the plane of the frame.
func (f *Frame) Offset(v geom.Point2) {
	for i := range f.Yz {
		f.Yz[i].Y += v.Y
		f.Yz[i].Z += v.Z
	}
}

// Insert inserts p at position index, shifting chines to match. If
// isChine, index is added as a chine.
func (f *Frame) Insert(index int, p geom.Point2, isChine bool) error {
	if index < 0 || index > len(f.Yz) {
		return fmt.Errorf("%w: insert index %d out of [0,%d]", ErrBadIndex, index, len(f.Yz))
	}
	f.Yz = append(f.Yz, geom.Point2{})
	copy(f.Yz[index+1:], f.Yz[index:])
	f.Yz[index] = p
	f.Chines = geom.KinkShift(f.Chines, index, 1)
	if isChine {
		f.Chines = geom.Insort(f.Chines, index)
	}
	return nil
}

// Delete removes the point at index, shifting chines to match.
func (f *Frame) Delete(index int) error {
	if index < 0 || index >= len(f.Yz) {
		return fmt.Errorf("%w: delete index %d out of [0,%d)", ErrBadIndex, index, len(f.Yz))
	}
	f.Yz = append(f.Yz[:index], f.Yz[index+1:]...)
	f.Chines = geom.KinkShift(f.Chines, index, -1)
	return nil
}

// Sections returns the piecewise-smooth sub-polylines split at the chine
// indices. A chine point is shared by both of its neighboring sections.
func (f *Frame) Sections() []geom.Polyline2 {
	secs := make([]geom.Polyline2, 0, len(f.Chines)+1)
	i := 0
	for _, c := range f.Chines {
		secs = append(secs, f.Yz[i:c+1])
		i = c
	}
	secs = append(secs, f.Yz[i:])
	return secs
}
