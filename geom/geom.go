// Package geom provides the ordered-point primitives shared by frames,
// waterlines and the other polyline-shaped objects in a lines plan.
package geom

import (
	"math"
	"sort"
)

// Point2 is a point in the (y, z) plane of a frame's half-section.
type Point2 struct {
	Y, Z float64
}

// Point3 is a point in the 3D (x, y, z) space of a waterline or hull line.
type Point3 struct {
	X, Y, Z float64
}

// Polyline2 is an ordered sequence of 2D points; consecutive points define
// straight segments. The polyline is open unless the producer closes it
// explicitly by repeating the first point at the end.
type Polyline2 []Point2

// Polyline3 is the 3D analogue of Polyline2.
type Polyline3 []Point3

// Segments returns the vector from each point to the next. Returns nil for
// polylines with fewer than two points.
func Segments(p Polyline2) []Point2 {
	if len(p) < 2 {
		return nil
	}
	segs := make([]Point2, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		segs[i] = Point2{p[i+1].Y - p[i].Y, p[i+1].Z - p[i].Z}
	}
	return segs
}

// Lengths returns the Euclidean length of each segment of p. Returns nil for
// polylines with fewer than two points.
func Lengths(p Polyline2) []float64 {
	segs := Segments(p)
	if segs == nil {
		return nil
	}
	lens := make([]float64, len(segs))
	for i, s := range segs {
		lens[i] = math.Hypot(s.Y, s.Z)
	}
	return lens
}

// TotalLength sums Lengths(p).
func TotalLength(p Polyline2) float64 {
	total := 0.0
	for _, l := range Lengths(p) {
		total += l
	}
	return total
}

// Insort inserts x into the strictly increasing, duplicate-free slice seq,
// keeping it sorted. It is a no-op if x is already present. Returns the
// updated slice.
func Insort(seq []int, x int) []int {
	i := sort.SearchInts(seq, x)
	if i < len(seq) && seq[i] == x {
		return seq
	}
	seq = append(seq, 0)
	copy(seq[i+1:], seq[i:])
	seq[i] = x
	return seq
}

// KinkShift is the sole mutation primitive for kink/chine index lists:
// after inserting a point at position index, every kink k >= index must
// become k+1 (direction > 0); after deleting position index, every kink
// k > index becomes k-1 and a kink exactly at index is dropped
// (direction < 0). Direct mutation of a kink slice is forbidden; all
// insert/delete operations on kinked objects must go through this
// function.
func KinkShift(kinks []int, index, direction int) []int {
	i := sort.SearchInts(kinks, index)
	j := i
	if direction < 0 && i < len(kinks) && kinks[i] == index {
		j = i + 1
	}
	shifted := make([]int, 0, len(kinks))
	shifted = append(shifted, kinks[:i]...)
	for _, k := range kinks[j:] {
		shifted = append(shifted, k+direction)
	}
	return shifted
}
