package hull

import (
	"fmt"

	"github.com/jrversteegh/linesplan/geom"
)

// DefaultCloseMargin is the default threshold below which a frame's first
// or last y value is snapped to the centerline rather than extended with an
// explicit extra point.
const DefaultCloseMargin = 5e-3

// Lines is a lines plan: a named, x-ordered collection of frames. Lines
// exclusively owns its Frames.
type Lines struct {
	Name   string
	Frames []*Frame
}

// Validate checks the invariants load_lines_plan must enforce: a non-empty,
// strictly x-ordered frame list where every frame has at least two points,
// every point sits at y >= 0 (a half-frame, not yet mirrored), and every
// chine index is in range.
func (l *Lines) Validate() error {
	if len(l.Frames) == 0 {
		return fmt.Errorf("%w: lines plan %q has no frames", ErrBadInput, l.Name)
	}
	for i, f := range l.Frames {
		if f.Len() < 2 {
			return fmt.Errorf("%w: frame %d (x=%g) has fewer than 2 points", ErrBadInput, i, f.X)
		}
		if i > 0 && f.X <= l.Frames[i-1].X {
			return fmt.Errorf("%w: frame %d (x=%g) is not strictly after frame %d (x=%g)",
				ErrBadInput, i, f.X, i-1, l.Frames[i-1].X)
		}
		for j, p := range f.Yz {
			if p.Y < 0 {
				return fmt.Errorf("%w: frame %d (x=%g) point %d has negative y=%g below the centerline",
					ErrBadInput, i, f.X, j, p.Y)
			}
		}
		for _, c := range f.Chines {
			if c <= 0 || c >= f.Len()-1 {
				return fmt.Errorf("%w: frame %d (x=%g) has chine index %d out of (0,%d)",
					ErrBadIndex, i, f.X, c, f.Len()-1)
			}
		}
	}
	return nil
}

// CloseFrames enforces the centerline-closure invariant on every frame: the
// first and last points must sit at y=0. A point within margin of the
// centerline is snapped to it; otherwise an explicit centerline point is
// prepended/appended and recorded as a chine. Idempotent within margin.
func (l *Lines) CloseFrames(margin float64) {
	for _, f := range l.Frames {
		n := f.Len()
		if n == 0 {
			continue
		}
		if f.Yz[0].Y < margin {
			f.Yz[0].Y = 0.0
		} else {
			f.Chines = geom.Insort(geom.KinkShift(f.Chines, 0, 1), 1)
			f.Yz = append(geom.Polyline2{{Y: 0, Z: f.Yz[0].Z}}, f.Yz...)
		}
		n = f.Len()
		if f.Yz[n-1].Y < margin {
			f.Yz[n-1].Y = 0.0
		} else {
			f.Chines = geom.Insort(f.Chines, n-1)
			f.Yz = append(f.Yz, geom.Point2{Y: 0, Z: f.Yz[n-1].Z})
		}
	}
}

// Scale multiplies every frame's y and z by factor; x stations are
// untouched since longitudinal measure is independent of half-breadth
// units.
func (l *Lines) Scale(factor float64) {
	for _, f := range l.Frames {
		f.Scale(factor)
	}
}
