package hydros

import (
	"fmt"
	"math"

	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
)

// DefaultKBSamples is the number of waterplanes KB samples between the
// lowest point of the hull and the design waterplane.
const DefaultKBSamples = 41

// Displacement returns the submerged volume ∫A_sect(x)dx under the draft
// line from draftAP to draftFP. full selects whether each section is
// already a full (un-doubled) cross-section rather than a half-frame.
func Displacement(frames []*hull.Frame, draftAP, draftFP float64, full bool) float64 {
	xs := stations(frames)
	sub := SubmergedFrames(frames, draftAP, draftFP)
	ys := make([]float64, len(sub))
	for i, s := range sub {
		ys[i] = SectionArea(s.Yz, full)
	}
	return simpson(xs, ys)
}

// LCB returns the longitudinal center of buoyancy: ∫x*A_sect(x)dx / ∇.
func LCB(frames []*hull.Frame, draftAP, draftFP float64) (float64, error) {
	xs := stations(frames)
	sub := SubmergedFrames(frames, draftAP, draftFP)
	ys := make([]float64, len(sub))
	xys := make([]float64, len(sub))
	for i, s := range sub {
		a := SectionArea(s.Yz, false)
		ys[i] = a
		xys[i] = a * xs[i]
	}
	disp := simpson(xs, ys)
	if disp == 0 {
		return 0, fmt.Errorf("%w: zero displacement, cannot locate LCB", hull.ErrDegenerateGeometry)
	}
	return simpson(xs, xys) / disp, nil
}

// WaterlineAt is a convenience wrapper returning the waterline at the given
// drafts, or ErrDegenerateGeometry if fewer than two frames touch the
// plane.
func WaterlineAt(frames []*hull.Frame, draftAP, draftFP float64) (geom.Polyline3, error) {
	wl := Waterline(frames, draftAP, draftFP)
	if len(wl) == 0 {
		return nil, fmt.Errorf("%w: fewer than two frames touch the waterplane at draftAP=%g draftFP=%g",
			hull.ErrDegenerateGeometry, draftAP, draftFP)
	}
	return wl, nil
}

// BM returns the transverse metacentric radius 2*Ix/∇.
func BM(frames []*hull.Frame, draftAP, draftFP float64) (float64, error) {
	wl, err := WaterlineAt(frames, draftAP, draftFP)
	if err != nil {
		return 0, err
	}
	_, _, ix, _, _ := WaterlineProperties(wl)
	disp := Displacement(frames, draftAP, draftFP, false)
	if disp == 0 {
		return 0, fmt.Errorf("%w: zero displacement, cannot compute BM", hull.ErrDegenerateGeometry)
	}
	return 2 * ix / disp, nil
}

// KB returns the vertical center of buoyancy, found by sampling nSamples
// waterplanes (default DefaultKBSamples) between the lowest hull point and
// the design waterplane under the same trim ratio and integrating A(d)*d
// over A(d).
func KB(frames []*hull.Frame, draftAP, draftFP float64, nSamples int) (float64, error) {
	if nSamples <= 1 {
		nSamples = DefaultKBSamples
	}
	maxDraft := math.Max(draftAP, draftFP)
	trimAft := maxDraft == draftAP
	drafts := make([]float64, nSamples)
	areas := make([]float64, nSamples)
	for i := 0; i < nSamples; i++ {
		t := float64(i) / float64(nSamples-1)
		ap := (draftAP-maxDraft)*(1-t) + draftAP*t
		fp := (draftFP-maxDraft)*(1-t) + draftFP*t
		wl := Waterline(frames, ap, fp)
		a, _, _, _, _ := WaterlineProperties(wl)
		areas[i] = a
		if trimAft {
			drafts[i] = ap
		} else {
			drafts[i] = fp
		}
	}
	disp := simpson(drafts, areas)
	if disp == 0 {
		return 0, fmt.Errorf("%w: zero integrated waterplane area, cannot compute KB", hull.ErrDegenerateGeometry)
	}
	weighted := make([]float64, nSamples)
	for i := range areas {
		weighted[i] = areas[i] * drafts[i]
	}
	return simpson(drafts, weighted) / disp, nil
}

// KM returns KB + BM.
func KM(frames []*hull.Frame, draftAP, draftFP float64, nKBSamples int) (float64, error) {
	bm, err := BM(frames, draftAP, draftFP)
	if err != nil {
		return 0, err
	}
	kb, err := KB(frames, draftAP, draftFP, nKBSamples)
	if err != nil {
		return 0, err
	}
	return kb + bm, nil
}

// LCF returns the longitudinal center of flotation, My/A of the waterplane.
func LCF(frames []*hull.Frame, draftAP, draftFP float64) (float64, error) {
	wl, err := WaterlineAt(frames, draftAP, draftFP)
	if err != nil {
		return 0, err
	}
	a, _, _, my, _ := WaterlineProperties(wl)
	if a == 0 {
		return 0, fmt.Errorf("%w: zero waterplane area, cannot locate LCF", hull.ErrDegenerateGeometry)
	}
	return my / a, nil
}

// WettedSurface returns 2*∫L_sub(x)dx, the external hull area below the
// waterline.
func WettedSurface(frames []*hull.Frame, draftAP, draftFP float64) float64 {
	xs := stations(frames)
	sub := SubmergedFrames(frames, draftAP, draftFP)
	ys := make([]float64, len(sub))
	for i, s := range sub {
		ys[i] = geom.TotalLength(s.Yz)
	}
	return 2 * simpson(xs, ys)
}

// HullAreas returns 2*∫L_hull(x)dx and 2*∫L_deck(x)dx, where each frame is
// split at its deckChine-th chine (a negative index counts from the end,
// matching the default of the last chine).
func HullAreas(frames []*hull.Frame, deckChine int) (hullArea, deckArea float64, err error) {
	xs := stations(frames)
	hullLens := make([]float64, len(frames))
	deckLens := make([]float64, len(frames))
	for i, f := range frames {
		if len(f.Chines) == 0 {
			return 0, 0, fmt.Errorf("%w: frame at x=%g has no chines to split hull/deck at", hull.ErrBadInput, f.X)
		}
		idx := deckChine
		if idx < 0 {
			idx += len(f.Chines)
		}
		if idx < 0 || idx >= len(f.Chines) {
			return 0, 0, fmt.Errorf("%w: deck chine index %d out of range for frame at x=%g", hull.ErrBadIndex, deckChine, f.X)
		}
		c := f.Chines[idx]
		hullLens[i] = geom.TotalLength(f.Yz[:c+1])
		deckLens[i] = geom.TotalLength(f.Yz[c:])
	}
	hullArea = 2 * simpson(xs, hullLens)
	deckArea = 2 * simpson(xs, deckLens)
	return hullArea, deckArea, nil
}

// HullVolume returns the volume enclosed by the (unclipped) frames
// themselves, ∫A_sect(x)dx over the full, un-submerged half-frames.
func HullVolume(frames []*hull.Frame) float64 {
	xs := stations(frames)
	ys := make([]float64, len(frames))
	for i, f := range frames {
		ys[i] = SectionArea(f.Yz, false)
	}
	return simpson(xs, ys)
}
