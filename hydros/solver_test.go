package hydros

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestMirrorToFullSymmetric(tst *testing.T) {
	chk.PrintTitle("MirrorToFullSymmetric")
	frames := cylinderFrames()
	full := MirrorToFull(frames)
	n := frames[0].Len()
	chk.IntAssert(full[0].Len(), 2*n)
	// mirrored point and original should have opposite y at matching z
	chk.Scalar(tst, "mirror y", 1e-12, full[0].Yz[0].Y, -frames[0].Yz[n-1].Y)
}

func TestFloatFramesConvergesOnCylinder(tst *testing.T) {
	chk.PrintTitle("FloatFramesConvergesOnCylinder")
	full := MirrorToFull(cylinderFrames())

	draft, trim, err := FloatFrames(full, 2*math.Pi, 2.0, DefaultSolveOptions())
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "draft", 1e-4, draft, 1.0)
	chk.Scalar(tst, "trim", 1e-4, trim, 0.0)
}

func TestSubmergeFramesMutatesInPlace(tst *testing.T) {
	full := MirrorToFull(cylinderFrames())
	z0 := full[0].Yz[0].Z
	disp, _, _, _, err := SubmergeFrames(full, 1.0, 0.0)
	if err != nil {
		tst.Fatal(err)
	}
	if disp <= 0 {
		tst.Fatalf("expected positive displacement, got %g", disp)
	}
	// SubmergeFrames mutates z in place, so the caller's original frame set
	// is no longer the pristine input.
	if full[0].Yz[0].Z == z0 {
		tst.Fatal("expected in-place z mutation")
	}
}
