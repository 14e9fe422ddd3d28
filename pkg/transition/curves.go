package transition

import "math"

// CurveName identifies a timing curve inside an animation description.
//
// Animations carry the name rather than the function so that descriptions
// stay comparable and structurally invertible. Players resolve the name
// with [CurveFunc] at playback time.
type CurveName string

const (
	// CurveLinear applies no easing.
	CurveLinear CurveName = "linear"
	// CurveEase is a general-purpose easing curve.
	CurveEase CurveName = "ease"
	// CurveEaseIn starts slowly and accelerates.
	CurveEaseIn CurveName = "ease-in"
	// CurveEaseOut starts quickly and decelerates.
	CurveEaseOut CurveName = "ease-out"
	// CurveEaseInOut starts and ends slowly.
	CurveEaseInOut CurveName = "ease-in-out"
)

var curves = map[CurveName]func(float64) float64{
	CurveLinear:    func(t float64) float64 { return t },
	CurveEase:      CubicBezier(0.25, 0.1, 0.25, 1.0),
	CurveEaseIn:    CubicBezier(0.4, 0.0, 1.0, 1.0),
	CurveEaseOut:   CubicBezier(0.0, 0.0, 0.2, 1.0),
	CurveEaseInOut: CubicBezier(0.4, 0.0, 0.2, 1.0),
}

// CurveFunc resolves a curve name to its easing function.
// Unknown names resolve to the linear curve.
func CurveFunc(name CurveName) func(float64) float64 {
	if fn, ok := curves[name]; ok {
		return fn
	}
	return curves[CurveLinear]
}

// ValidCurve reports whether name resolves to a registered curve.
func ValidCurve(name CurveName) bool {
	_, ok := curves[name]
	return ok
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1)
// and (x2,y2); the curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
