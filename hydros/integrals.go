package hydros

import "github.com/jrversteegh/linesplan/geom"

// SectionArea returns the cross-sectional area swept by p, computed as
// Σ 1/2(y_i+y_{i+1})(z_{i+1}-z_i). The result is doubled unless full is
// true, since p is conventionally a symmetric half-frame. A polyline of
// fewer than 2 points has area 0.
func SectionArea(p geom.Polyline2, full bool) float64 {
	if len(p) < 2 {
		return 0.0
	}
	area := 0.0
	for i := 0; i < len(p)-1; i++ {
		area += 0.5 * (p[i].Y + p[i+1].Y) * (p[i+1].Z - p[i].Z)
	}
	if full {
		return area
	}
	return 2 * area
}

// MomentY returns the static moment ∫y dA of the section swept by p (the
// transverse moment, zero for a symmetric full frame at no heel),
// Σ (z_{i+1}-z_i)(y_i²+y_i*y_{i+1}+y_{i+1}²)/6.
func MomentY(p geom.Polyline2) float64 {
	if len(p) < 2 {
		return 0.0
	}
	m := 0.0
	for i := 0; i < len(p)-1; i++ {
		dz := p[i+1].Z - p[i].Z
		yy := p[i].Y*p[i].Y + p[i].Y*p[i+1].Y + p[i+1].Y*p[i+1].Y
		m += dz * yy
	}
	return m / 6.0
}

// MomentZ returns the static moment ∫z dA of the section swept by p (the
// vertical moment; divided by the section area it gives the height of the
// section's centroid),
// Σ (z_{i+1}-z_i)[2(z_i*y_i+z_{i+1}*y_{i+1})+(z_i*y_{i+1}+z_{i+1}*y_i)]/6.
func MomentZ(p geom.Polyline2) float64 {
	if len(p) < 2 {
		return 0.0
	}
	m := 0.0
	for i := 0; i < len(p)-1; i++ {
		dz := p[i+1].Z - p[i].Z
		zy := 2*(p[i].Z*p[i].Y+p[i+1].Z*p[i+1].Y) + (p[i].Z*p[i+1].Y + p[i+1].Z*p[i].Y)
		m += dz * zy
	}
	return m / 6.0
}
