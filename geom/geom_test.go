package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSegmentsAndLengths(tst *testing.T) {
	chk.PrintTitle("SegmentsAndLengths")

	p := Polyline2{{Y: 0, Z: 0}, {Y: 3, Z: 4}, {Y: 3, Z: 0}}
	segs := Segments(p)
	chk.IntAssert(len(segs), 2)
	chk.Scalar(tst, "seg0.y", 1e-15, segs[0].Y, 3)
	chk.Scalar(tst, "seg0.z", 1e-15, segs[0].Z, 4)

	lens := Lengths(p)
	chk.Scalar(tst, "len0", 1e-15, lens[0], 5)
	chk.Scalar(tst, "len1", 1e-15, lens[1], 4)
	chk.Scalar(tst, "total", 1e-15, TotalLength(p), 9)
}

func TestSegmentsShort(tst *testing.T) {
	if Segments(nil) != nil {
		tst.Error("expected nil segments for empty polyline")
	}
	if Lengths(Polyline2{{Y: 1, Z: 1}}) != nil {
		tst.Error("expected nil lengths for single-point polyline")
	}
}

func TestInsort(tst *testing.T) {
	var seq []int
	for _, x := range []int{5, 1, 3, 1, 9} {
		seq = Insort(seq, x)
	}
	want := []int{1, 3, 5, 9}
	if len(seq) != len(want) {
		tst.Fatalf("got %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			tst.Fatalf("got %v, want %v", seq, want)
		}
	}
}

func TestKinkShiftInsert(tst *testing.T) {
	kinks := []int{2, 5, 8}
	shifted := KinkShift(kinks, 4, 1)
	want := []int{2, 6, 9}
	for i := range want {
		if shifted[i] != want[i] {
			tst.Fatalf("insert shift: got %v, want %v", shifted, want)
		}
	}
}

func TestKinkShiftDelete(tst *testing.T) {
	kinks := []int{2, 5, 8}
	// deleting index 5 removes the kink and pulls everything after it down
	shifted := KinkShift(kinks, 5, -1)
	want := []int{2, 7}
	if len(shifted) != len(want) {
		tst.Fatalf("delete shift: got %v, want %v", shifted, want)
	}
	for i := range want {
		if shifted[i] != want[i] {
			tst.Fatalf("delete shift: got %v, want %v", shifted, want)
		}
	}

	// deleting a non-kink index just shifts kinks after it
	shifted = KinkShift(kinks, 3, -1)
	want = []int{2, 4, 7}
	for i := range want {
		if shifted[i] != want[i] {
			tst.Fatalf("delete shift non-kink: got %v, want %v", shifted, want)
		}
	}
}
