package hydros

import (
	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
)

// frameCrossings pairs a frame station with its remaining (mutable,
// stack-like) crossing points at a given waterplane.
type frameCrossings struct {
	x         float64
	crossings []geom.Point2
}

// pop removes and returns the last crossing, or false if none remain.
func (fc *frameCrossings) pop() (geom.Point2, bool) {
	n := len(fc.crossings)
	if n == 0 {
		return geom.Point2{}, false
	}
	p := fc.crossings[n-1]
	fc.crossings = fc.crossings[:n-1]
	return p, true
}

// walkState names the state machine driving the waterline stitch: walk
// from the forward-most frame aft consuming the last crossing of each
// frame, reverse
// direction at either end (revisiting the boundary frame so its remaining
// crossing is consumed), and stop once a frame is exhausted.
type walkState int

const (
	walkAft walkState = iota
	walkForward
	walkDone
)

// Waterline assembles the single closed 3D polyline formed by intersecting
// every frame with the tilted waterplane defined by draftAP/draftFP. The
// walk starts at the forward-most frame, runs aft along one side, turns at
// the aft-most frame and runs forward along the other side; the points are
// returned in reverse walk order. Frames
// not touching the plane are trimmed from both ends before the walk; if
// fewer than two frames remain, an empty waterline is returned (not an
// error — the caller decides whether that is degenerate).
func Waterline(frames []*hull.Frame, draftAP, draftFP float64) geom.Polyline3 {
	if len(frames) == 0 {
		return nil
	}
	x0, xN := frames[0].X, frames[len(frames)-1].X
	list := make([]*frameCrossings, 0, len(frames))
	for _, f := range frames {
		d := DraftAt(f.X, x0, xN, draftAP, draftFP)
		list = append(list, &frameCrossings{x: f.X, crossings: Crossings(f.Yz, d)})
	}

	for len(list) > 0 && len(list[len(list)-1].crossings) == 0 {
		list = list[:len(list)-1]
	}
	for len(list) > 0 && len(list[0].crossings) == 0 {
		list = list[1:]
	}
	if len(list) < 2 {
		return nil
	}

	var result geom.Polyline3
	direction := -1
	i := len(list)
	state := walkAft
	for state != walkDone {
		i += direction
		if i < 0 || i == len(list) {
			direction = -direction
			i += direction
			if direction > 0 {
				state = walkForward
			} else {
				state = walkAft
			}
		}
		p, ok := list[i].pop()
		if !ok {
			state = walkDone
			break
		}
		result = append(result, geom.Point3{X: list[i].x, Y: p.Y, Z: p.Z})
	}

	for l, r := 0, len(result)-1; l < r; l, r = l+1, r-1 {
		result[l], result[r] = result[r], result[l]
	}
	return result
}
