// Package linesplan computes naval-architecture hydrostatic properties —
// displacement, centers of buoyancy and flotation, metacentric heights,
// wetted surface, and equilibrium flotation — from a ship's lines plan.
package linesplan

import (
	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
	"github.com/jrversteegh/linesplan/hydros"
	"github.com/jrversteegh/linesplan/planio"
)

// Frame and Lines are the public domain types; see package hull for their
// fields and operations.
type (
	Frame = hull.Frame
	Lines = hull.Lines
)

// Point2, Point3, Polyline2 and Polyline3 are the public geometry types;
// see package geom.
type (
	Point2    = geom.Point2
	Point3    = geom.Point3
	Polyline2 = geom.Polyline2
	Polyline3 = geom.Polyline3
)

// Error kinds surfaced by this module. Use errors.Is to test for them.
var (
	ErrBadInput           = hull.ErrBadInput
	ErrBadIndex           = hull.ErrBadIndex
	ErrDegenerateGeometry = hull.ErrDegenerateGeometry
	ErrSolverDiverged     = hull.ErrSolverDiverged
	ErrIOError            = hull.ErrIOError
)

// NewFrame builds a frame at station x from a half-section point list.
func NewFrame(x float64, yz Polyline2) *Frame {
	return hull.NewFrame(x, yz)
}

// LoadLinesPlan reads a lines plan from a JSON file.
func LoadLinesPlan(path string) (*Lines, error) {
	return planio.Load(path)
}

// SaveLinesPlan writes lines to path as 2-space-indented JSON.
func SaveLinesPlan(lines *Lines, path string) error {
	return planio.Save(lines, path)
}

// GetWaterline returns the waterline at the given aft/forward-perpendicular
// drafts. draftFP defaults to draftAP when equal to it.
func GetWaterline(frames []*Frame, draftAP, draftFP float64) (Polyline3, error) {
	return hydros.WaterlineAt(frames, draftAP, draftFP)
}

// GetWaterlines returns one waterline per (draftAP, draftFP) pair.
func GetWaterlines(frames []*Frame, draftsAP, draftsFP []float64) ([]Polyline3, error) {
	out := make([]Polyline3, len(draftsAP))
	for i := range draftsAP {
		out[i] = hydros.Waterline(frames, draftsAP[i], draftsFP[i])
	}
	return out, nil
}

// GetWaterlineProperties returns (area, Mx, Ix, My, Iy) of a waterline
// polygon projected onto the waterplane.
func GetWaterlineProperties(wl Polyline3) (area, mx, ix, my, iy float64) {
	return hydros.WaterlineProperties(wl)
}

// GetCrossSection returns the submerged cross-sectional area of a single
// frame at local draft d. full selects whether the frame is already a full
// (un-doubled) section.
func GetCrossSection(frame *Frame, d float64, full bool) float64 {
	sub := hydros.SubmergeFrame(frame, d)
	return hydros.SectionArea(sub.Yz, full)
}

// GetDisplacement returns the submerged volume at the given drafts.
func GetDisplacement(frames []*Frame, draftAP, draftFP float64) float64 {
	return hydros.Displacement(frames, draftAP, draftFP, false)
}

// GetLCB returns the longitudinal center of buoyancy at the given drafts.
func GetLCB(frames []*Frame, draftAP, draftFP float64) (float64, error) {
	return hydros.LCB(frames, draftAP, draftFP)
}

// GetLCF returns the longitudinal center of flotation at the given drafts.
func GetLCF(frames []*Frame, draftAP, draftFP float64) (float64, error) {
	return hydros.LCF(frames, draftAP, draftFP)
}

// GetBM returns the transverse metacentric radius at the given drafts.
func GetBM(frames []*Frame, draftAP, draftFP float64) (float64, error) {
	return hydros.BM(frames, draftAP, draftFP)
}

// GetKB returns the vertical center of buoyancy, sampling nSamples
// waterplanes (0 selects the default of 41).
func GetKB(frames []*Frame, draftAP, draftFP float64, nSamples int) (float64, error) {
	return hydros.KB(frames, draftAP, draftFP, nSamples)
}

// GetKM returns KB + BM at the given drafts.
func GetKM(frames []*Frame, draftAP, draftFP float64) (float64, error) {
	return hydros.KM(frames, draftAP, draftFP, 0)
}

// GetWettedSurface returns the external hull area below the waterline.
func GetWettedSurface(frames []*Frame, draftAP, draftFP float64) float64 {
	return hydros.WettedSurface(frames, draftAP, draftFP)
}

// GetHullAreas returns the hull and deck surface areas, split at the last
// chine of each frame.
func GetHullAreas(frames []*Frame) (hullArea, deckArea float64, err error) {
	return hydros.HullAreas(frames, -1)
}

// GetHullVolume returns the volume enclosed by the (un-submerged) frames.
func GetHullVolume(frames []*Frame) float64 {
	return hydros.HullVolume(frames)
}

// GetSubmergedFrame returns the submerged portion of a single frame at
// local draft d.
func GetSubmergedFrame(frame *Frame, d float64) *Frame {
	return hydros.SubmergeFrame(frame, d)
}

// GetSubmergedFrames returns the submerged portion of every frame under the
// given draft line.
func GetSubmergedFrames(frames []*Frame, draftAP, draftFP float64) []*Frame {
	return hydros.SubmergedFrames(frames, draftAP, draftFP)
}

// GetFullFrames mirrors every half-frame to a symmetric closed frame.
func GetFullFrames(frames []*Frame) []*Frame {
	return hydros.MirrorToFull(frames)
}

// GetRotatedFrames rotates full (symmetric) frames about the x axis by phi
// radians, simulating heel.
func GetRotatedFrames(fullFrames []*Frame, phi float64) []*Frame {
	return hydros.Rotate(fullFrames, phi)
}

// SubmergeFrames returns (∇, xB, yB, zB) for full frames submerged at the
// given draft and trim. It mutates fullFrames' z values in place.
func SubmergeFrames(fullFrames []*Frame, draft, trim float64) (disp, xB, yB, zB float64, err error) {
	return hydros.SubmergeFrames(fullFrames, draft, trim)
}

// FloatFrames solves for the (draft, trim) pair at which fullFrames realize
// targetDisp displacement at targetLCB, using the default solver tolerance
// and iteration cap.
func FloatFrames(fullFrames []*Frame, targetDisp, targetLCB float64) (draft, trim float64, err error) {
	return hydros.FloatFrames(fullFrames, targetDisp, targetLCB, hydros.DefaultSolveOptions())
}
