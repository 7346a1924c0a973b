package hydros

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/jrversteegh/linesplan/geom"
)

// TestWaterlinePropertiesRectangle checks that a rectangle and its mirror
// about x=0 (x -> -x) agree on area, Mx, Ix, Iy and negate on My.
func TestWaterlinePropertiesRectangle(tst *testing.T) {
	chk.PrintTitle("WaterlinePropertiesRectangle")

	w1 := geom.Polyline3{
		{X: 1, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 2, Y: 2, Z: 2}, {X: 2, Y: 0, Z: 2},
	}
	w2 := geom.Polyline3{
		{X: -2, Y: 0, Z: 2}, {X: -2, Y: 2, Z: 2}, {X: -1, Y: 1, Z: 2}, {X: -1, Y: 0, Z: 2},
	}

	a1, mx1, ix1, my1, iy1 := WaterlineProperties(w1)
	a2, mx2, ix2, my2, iy2 := WaterlineProperties(w2)

	chk.Scalar(tst, "area", 1e-15, a1, a2)
	chk.Scalar(tst, "mx", 1e-15, mx1, mx2)
	chk.Scalar(tst, "mx value", 1e-15, mx1, 7.0/6.0)
	chk.Scalar(tst, "my negated", 1e-15, my1, -my2)
	chk.Scalar(tst, "my value", 1e-15, my1, 7.0/3.0)
	chk.Scalar(tst, "ix", 1e-15, ix1, ix2)
	chk.Scalar(tst, "ix value", 1e-15, ix1, 5.0/4.0)
	chk.Scalar(tst, "iy", 1e-15, iy1, iy2)
	chk.Scalar(tst, "iy value", 1e-15, iy1, 15.0/4.0)
}
