// Package hydros implements the hydrostatics computations over a lines
// plan: section clipping, longitudinal quadrature, waterline assembly and
// the flotation solver.
package hydros

import (
	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
)

// Crossings returns, for each segment of p whose endpoints straddle the
// horizontal level z=d, the interpolated crossing point. A segment with
// both endpoints exactly on d, or with dz=0, is not a crossing: the
// degenerate product (d-p0.z)*(d-p1.z) is zero so the strict-sign test
// fails. No tolerance is applied beyond that strict test; callers needing
// robustness against near-zero values must pre-snap them.
func Crossings(p geom.Polyline2, d float64) []geom.Point2 {
	if len(p) < 2 {
		return nil
	}
	var out []geom.Point2
	prev := p[0]
	for _, cur := range p[1:] {
		prevSub := d - prev.Z
		newSub := d - cur.Z
		if prevSub*newSub < 0 {
			out = append(out, crossingPoint(prev, cur, d, prevSub))
		}
		prev = cur
	}
	return out
}

// crossingPoint interpolates the y at level d between prev and cur, given
// prevSub = d - prev.Z. If the segment is level (dz=0) the previous point's
// y is used at level d.
func crossingPoint(prev, cur geom.Point2, d, prevSub float64) geom.Point2 {
	dz := cur.Z - prev.Z
	if dz == 0 {
		return geom.Point2{Y: prev.Y, Z: d}
	}
	dy := cur.Y - prev.Y
	return geom.Point2{Y: prev.Y + prevSub/dz*dy, Z: d}
}

// Submerge walks the segments of p in order and returns the portion at or
// below z=d, a crossing point is inserted first whenever a sign change
// occurs, then the segment's far endpoint is appended if it is itself at or
// below d. The walk never double-emits the starting point: it is only
// included via its role as the second endpoint of the first segment.
func Submerge(p geom.Polyline2, d float64) geom.Polyline2 {
	if len(p) == 0 {
		return nil
	}
	var out geom.Polyline2
	prev := p[0]
	for _, cur := range p {
		prevSub := d - prev.Z
		newSub := d - cur.Z
		if prevSub*newSub < 0 {
			out = append(out, crossingPoint(prev, cur, d, prevSub))
		}
		if newSub >= 0 {
			out = append(out, cur)
		}
		prev = cur
	}
	return out
}

// SubmergeFrame returns a new frame holding the submerged portion of f at
// the given local draft (z level above baseline), with crossing points
// added on the z=d line.
func SubmergeFrame(f *hull.Frame, d float64) *hull.Frame {
	return hull.NewFrame(f.X, Submerge(f.Yz, d))
}

// DraftAt returns the locally defined waterplane level at station x, given
// linear interpolation between aft-perpendicular draft (at x0) and
// forward-perpendicular draft (at xN).
func DraftAt(x, x0, xN, draftAP, draftFP float64) float64 {
	if xN == x0 {
		return draftAP
	}
	return draftAP + (x-x0)/(xN-x0)*(draftFP-draftAP)
}

// SubmergedFrames returns the submerged portion of every frame under the
// draft line running from draftAP at the aft-most frame to draftFP at the
// forward-most frame. draftFP defaults to draftAP when equal.
func SubmergedFrames(frames []*hull.Frame, draftAP, draftFP float64) []*hull.Frame {
	if len(frames) == 0 {
		return nil
	}
	x0, xN := frames[0].X, frames[len(frames)-1].X
	out := make([]*hull.Frame, len(frames))
	for i, f := range frames {
		d := DraftAt(f.X, x0, xN, draftAP, draftFP)
		out[i] = SubmergeFrame(f, d)
	}
	return out
}
