// Package anim provides the timing curves and the frame-tick animation value
// used to settle the divider after a drag.
package anim

// Curve reshapes an interpolation fraction in [0,1]. The output is not
// required to stay inside [0,1]; the dim curve intentionally undershoots.
type Curve func(t float64) float64

// Linear passes the fraction through unchanged.
func Linear(t float64) float64 { return t }

// Timing curves of the divider gesture. The control points match the
// platform interpolators the effect was tuned against.
var (
	// TouchResponse eases the scripted settle after a programmatic drag.
	TouchResponse = CubicBezier(0.3, 0, 0.1, 1)
	// Slowdown reshapes the dismiss fraction for the parallax offset.
	Slowdown = CubicBezier(0.5, 1, 0.5, 1)
	// Dim reshapes the dismiss fraction for the dim overlay; it dips below
	// zero near the end so the overlay releases with a slight rebound.
	Dim = CubicBezier(0.23, 0.87, 0.52, -0.11)
	// FastOutSlowIn is the default settle ease.
	FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)
)

// CubicBezier returns the timing curve through (0,0), (x1,y1), (x2,y2),
// (1,1). x1 and x2 must lie in [0,1] for the curve to be a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierAxis(solveBezierT(t, x1, x2), y1, y2)
	}
}

// bezierAxis evaluates one axis of the cubic bezier at parameter u, with
// implicit control values 0 and 1 at the endpoints.
func bezierAxis(u, c1, c2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*c1 + 3*inv*u*u*c2 + u*u*u
}

func bezierAxisDerivative(u, c1, c2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*c1 + 6*inv*u*(c2-c1) + 3*u*u*(1-c2)
}

// solveBezierT finds the curve parameter whose x equals the given time
// fraction, Newton iterations first and a bisection fallback when the
// derivative degenerates.
func solveBezierT(x, x1, x2 float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		d := bezierAxisDerivative(u, x1, x2)
		if d < 1e-6 {
			break
		}
		err := bezierAxis(u, x1, x2) - x
		if err > -1e-7 && err < 1e-7 {
			return u
		}
		u -= err / d
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		u = (lo + hi) / 2
		if bezierAxis(u, x1, x2) < x {
			lo = u
		} else {
			hi = u
		}
	}
	return u
}
