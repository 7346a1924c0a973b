package linesplan

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func cylinderFrames() []*Frame {
	const n = 201
	frames := make([]*Frame, 5)
	for i := range frames {
		pts := make(Polyline2, n)
		for j := 0; j < n; j++ {
			t := math.Pi * float64(j) / float64(n-1)
			pts[j] = Point2{Y: math.Sin(t), Z: 1 - math.Cos(t)}
		}
		f := NewFrame(float64(i), pts)
		f.Chines = []int{n / 2}
		frames[i] = f
	}
	return frames
}

func TestPublicAPIDisplacementAndKM(tst *testing.T) {
	chk.PrintTitle("PublicAPIDisplacementAndKM")
	frames := cylinderFrames()

	disp := GetDisplacement(frames, 1.0, 1.0)
	chk.Scalar(tst, "displacement", 1e-2, disp, 2*math.Pi)

	km, err := GetKM(frames, 1.0, 1.0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "km", 1e-2, km, 1.0)
}

func TestPublicAPIFloatFrames(tst *testing.T) {
	full := GetFullFrames(cylinderFrames())
	draft, trim, err := FloatFrames(full, 2*math.Pi, 2.0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "draft", 1e-4, draft, 1.0)
	chk.Scalar(tst, "trim", 1e-4, trim, 0.0)
}

func TestPublicAPIWaterlineDegenerate(tst *testing.T) {
	frames := cylinderFrames()
	// a draft far above the hull touches no frame
	if _, err := GetWaterline(frames, 100, 100); err == nil {
		tst.Fatal("expected ErrDegenerateGeometry")
	}
}
