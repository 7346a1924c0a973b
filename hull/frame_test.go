package hull

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/jrversteegh/linesplan/geom"
)

func rectFrame() *Frame {
	return NewFrame(1.0, geom.Polyline2{
		{Y: 0, Z: 0}, {Y: 0, Z: 1}, {Y: 1, Z: 1}, {Y: 1, Z: 0},
	})
}

func TestFrameScaleOffset(tst *testing.T) {
	chk.PrintTitle("FrameScaleOffset")
	f := rectFrame()
	f.Scale(2.0)
	chk.Scalar(tst, "yz[2].y", 1e-15, f.Yz[2].Y, 2.0)
	chk.Scalar(tst, "yz[2].z", 1e-15, f.Yz[2].Z, 2.0)

	f.Offset(geom.Point2{Y: 1, Z: -1})
	chk.Scalar(tst, "yz[0].y", 1e-15, f.Yz[0].Y, 1.0)
	chk.Scalar(tst, "yz[0].z", 1e-15, f.Yz[0].Z, -1.0)
}

func TestFrameInsertDeleteShiftsChines(tst *testing.T) {
	f := rectFrame()
	f.Chines = []int{2}
	if err := f.Insert(1, geom.Point2{Y: 0.5, Z: 0.5}, false); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(f.Len(), 5)
	chk.IntAssert(f.Chines[0], 3)

	if err := f.Delete(1); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(f.Len(), 4)
	chk.IntAssert(f.Chines[0], 2)
}

func TestFrameInsertBadIndex(tst *testing.T) {
	f := rectFrame()
	err := f.Insert(99, geom.Point2{}, false)
	if !errors.Is(err, ErrBadIndex) {
		tst.Fatalf("expected ErrBadIndex, got %v", err)
	}
}

func TestFrameSectionsInclusiveAtChines(tst *testing.T) {
	f := rectFrame()
	f.Chines = []int{1, 2}
	secs := f.Sections()
	chk.IntAssert(len(secs), 3)
	chk.IntAssert(len(secs[0]), 2) // [0,1]
	chk.IntAssert(len(secs[1]), 2) // [1,2]
	chk.IntAssert(len(secs[2]), 2) // [2,3]
}
