package hydros

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
)

// MirrorToFull mirrors every half-frame about the centerline (y -> -y) and
// prepends the reversed mirror onto the original, producing a symmetric
// closed frame suitable for heel and flotation computations.
func MirrorToFull(frames []*hull.Frame) []*hull.Frame {
	out := make([]*hull.Frame, len(frames))
	for i, f := range frames {
		full := make(geom.Polyline2, 0, 2*f.Len())
		for j := f.Len() - 1; j >= 0; j-- {
			full = append(full, geom.Point2{Y: -f.Yz[j].Y, Z: f.Yz[j].Z})
		}
		full = append(full, f.Yz...)
		out[i] = hull.NewFrame(f.X, full)
	}
	return out
}

// Rotate returns a copy of fullFrames rotated about the x axis by phi
// radians, simulating heel.
func Rotate(fullFrames []*hull.Frame, phi float64) []*hull.Frame {
	c, s := math.Cos(phi), math.Sin(phi)
	out := make([]*hull.Frame, len(fullFrames))
	for i, f := range fullFrames {
		rotated := make(geom.Polyline2, f.Len())
		for j, p := range f.Yz {
			rotated[j] = geom.Point2{
				Y: c*p.Y + s*p.Z,
				Z: -s*p.Y + c*p.Z,
			}
		}
		out[i] = hull.NewFrame(f.X, rotated)
	}
	return out
}

// copyFrames deep-copies a frame set, since SubmergeFrames mutates z in
// place.
func copyFrames(frames []*hull.Frame) []*hull.Frame {
	out := make([]*hull.Frame, len(frames))
	for i, f := range frames {
		yz := make(geom.Polyline2, len(f.Yz))
		copy(yz, f.Yz)
		out[i] = &hull.Frame{X: f.X, Yz: yz, Chines: append([]int(nil), f.Chines...)}
	}
	return out
}

// SubmergeFrames shifts each full frame's z by the local draft line
// (draft at the aft perpendicular, draft-trim at the forward one), clips
// at z=0 and returns (∇, x_B, y_B, z_B). It mutates fullFrames' z values in
// place; callers needing the unshifted frames afterwards must pass a copy.
func SubmergeFrames(fullFrames []*hull.Frame, draft, trim float64) (disp, xB, yB, zB float64, err error) {
	draftAP := draft
	draftFP := draft - trim
	if len(fullFrames) == 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: no frames to submerge", hull.ErrDegenerateGeometry)
	}
	xs := stations(fullFrames)
	x0, xN := xs[0], xs[len(xs)-1]
	for _, f := range fullFrames {
		d := DraftAt(f.X, x0, xN, draftAP, draftFP)
		for i := range f.Yz {
			f.Yz[i].Z -= d
		}
	}
	sub := SubmergedFrames(fullFrames, 0, 0)
	areas := make([]float64, len(sub))
	momYs := make([]float64, len(sub))
	momZs := make([]float64, len(sub))
	xAreas := make([]float64, len(sub))
	for i, s := range sub {
		a := SectionArea(s.Yz, true)
		areas[i] = a
		xAreas[i] = a * xs[i]
		momYs[i] = MomentY(s.Yz)
		momZs[i] = MomentZ(s.Yz)
	}
	disp = simpson(xs, areas)
	if disp == 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: zero submerged volume at draft=%g trim=%g", hull.ErrDegenerateGeometry, draft, trim)
	}
	xB = simpson(xs, xAreas) / disp
	yB = simpson(xs, momYs) / disp
	zB = simpson(xs, momZs) / disp
	return disp, xB, yB, zB, nil
}

// SolveOptions tunes FloatFrames's Newton iteration.
type SolveOptions struct {
	Tolerance float64 // residual convergence tolerance, SI units
	MaxIters  int     // iteration cap
	FDStep    float64 // finite-difference step for the Jacobian-free Jacobian estimate
}

// DefaultSolveOptions returns the default tolerance and iteration cap:
// 1e-6 residual norm, 50 iterations.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{Tolerance: 1e-6, MaxIters: 50, FDStep: 1e-4}
}

// residual evaluates R(draft,trim) = (targetDisp - ∇, targetLCB - x_B) on a
// deep copy of fullFrames, since SubmergeFrames mutates z in place.
func residual(fullFrames []*hull.Frame, targetDisp, targetLCB, draft, trim float64) ([2]float64, error) {
	ff := copyFrames(fullFrames)
	disp, xB, _, _, err := SubmergeFrames(ff, draft, trim)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{targetDisp - disp, targetLCB - xB}, nil
}

// FloatFrames solves for the (draft, trim) pair at which fullFrames realize
// targetDisp displacement at targetLCB, via a Jacobian-free Newton
// iteration: each step's 2x2 Jacobian is estimated by forward differences
// on the residual and solved directly since the system is always 2x2
// dense. The initial guess is draft = M_z(main)/A_full(main) at midship,
// trim = 0.
func FloatFrames(fullFrames []*hull.Frame, targetDisp, targetLCB float64, opts SolveOptions) (draft, trim float64, err error) {
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-6
	}
	if opts.MaxIters <= 0 {
		opts.MaxIters = 50
	}
	if opts.FDStep <= 0 {
		opts.FDStep = 1e-4
	}

	mid := fullFrames[len(fullFrames)/2]
	draft = MomentZ(mid.Yz) / SectionArea(mid.Yz, true)
	trim = 0.0

	for it := 0; it < opts.MaxIters; it++ {
		r, err := residual(fullFrames, targetDisp, targetLCB, draft, trim)
		if err != nil {
			return 0, 0, err
		}
		if math.Hypot(r[0], r[1]) < opts.Tolerance {
			return draft, trim, nil
		}

		rd, err := residual(fullFrames, targetDisp, targetLCB, draft+opts.FDStep, trim)
		if err != nil {
			return 0, 0, err
		}
		rt, err := residual(fullFrames, targetDisp, targetLCB, draft, trim+opts.FDStep)
		if err != nil {
			return 0, 0, err
		}

		jac := la.MatAlloc(2, 2)
		jac[0][0] = (rd[0] - r[0]) / opts.FDStep
		jac[1][0] = (rd[1] - r[1]) / opts.FDStep
		jac[0][1] = (rt[0] - r[0]) / opts.FDStep
		jac[1][1] = (rt[1] - r[1]) / opts.FDStep

		det := jac[0][0]*jac[1][1] - jac[0][1]*jac[1][0]
		if det == 0 {
			return 0, 0, fmt.Errorf("%w: singular Jacobian at iteration %d", hull.ErrSolverDiverged, it)
		}
		// Newton step: solve jac * delta = -r, i.e. draft/trim move in the
		// direction that drives the residual to zero.
		dDraft := (r[1]*jac[0][1] - r[0]*jac[1][1]) / det
		dTrim := (jac[1][0]*r[0] - jac[0][0]*r[1]) / det

		if math.IsNaN(dDraft) || math.IsNaN(dTrim) {
			return 0, 0, fmt.Errorf("%w: non-finite update at iteration %d", hull.ErrSolverDiverged, it)
		}

		draft += dDraft
		trim += dTrim
	}
	return 0, 0, fmt.Errorf("%w: exceeded %d iterations without converging", hull.ErrSolverDiverged, opts.MaxIters)
}
