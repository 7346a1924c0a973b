package hydros

import "github.com/jrversteegh/linesplan/geom"

// WaterlineProperties returns the projection of a 3D waterline polyline
// onto the x-y waterplane: area A, static moment about x (Mx), second
// moment about x (Ix), static moment about y (My), second moment about y
// (Iy). z is treated as constant per segment by construction even under
// trim, since the metrics are defined on the waterplane projection.
func WaterlineProperties(wl geom.Polyline3) (A, Mx, Ix, My, Iy float64) {
	for i := 0; i < len(wl)-1; i++ {
		x1, x2 := wl[i].X, wl[i+1].X
		y1, y2 := wl[i].Y, wl[i+1].Y
		dx := x2 - x1
		A += dx * (y1 + y2) / 2.0
		Mx += dx * (y1*y1 + y1*y2 + y2*y2) / 6.0
		Ix += dx * (y1*y1*y1 + y1*y1*y2 + y1*y2*y2 + y2*y2*y2) / 12.0
		My += dx * (2*(x1*y1+x2*y2) + (x1*y2 + x2*y1)) / 6.0
		Iy += dx * (y1*(3*x1*x1+x2*x2+2*x1*x2) + y2*(x1*x1+3*x2*x2+2*x1*x2)) / 12.0
	}
	return
}
