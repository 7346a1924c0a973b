package hydros

import "github.com/jrversteegh/linesplan/hull"

// simpson integrates ys sampled at xs using the composite Simpson's rule.
// xs need not be evenly spaced, but must have the same even-interval
// structure Simpson's rule expects: with n points (n-1 intervals), a full
// Simpson pass requires n to be odd. When n is even, the leading interval
// is integrated with the trapezoidal rule and the remaining odd-sized tail
// with Simpson's rule, a documented, tested fallback rather than silently
// degrading accuracy.
func simpson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0.0
	}
	if n == 2 {
		return (xs[1] - xs[0]) * (ys[0] + ys[1]) / 2.0
	}
	start := 0
	total := 0.0
	if n%2 == 0 {
		total += (xs[1] - xs[0]) * (ys[0] + ys[1]) / 2.0
		start = 1
	}
	for i := start; i+2 < n; i += 2 {
		h0 := xs[i+1] - xs[i]
		h1 := xs[i+2] - xs[i+1]
		total += simpsonPanel(h0, h1, ys[i], ys[i+1], ys[i+2])
	}
	return total
}

// simpsonPanel integrates one three-point Simpson panel allowing unequal
// sub-interval widths h0, h1.
func simpsonPanel(h0, h1, y0, y1, y2 float64) float64 {
	h := h0 + h1
	if h == 0 {
		return 0
	}
	return h / 6.0 * ((2 - h1/h0) * y0 + (h*h)/(h0*h1)*y1 + (2 - h0/h1) * y2)
}

func stations(frames []*hull.Frame) []float64 {
	xs := make([]float64, len(frames))
	for i, f := range frames {
		xs[i] = f.X
	}
	return xs
}
