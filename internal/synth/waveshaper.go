package synth

import (
	"math"

	"github.com/tphakala/go-lutgen/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// ShaperAxis returns 257 inputs from -1 to 1 in steps of 1/128, with the
// last sample repeated so the curve has no lone endpoint at +1.
func ShaperAxis() []float64 {
	x := rawAxis(0)
	x[len(x)-1] = x[len(x)-2]
	return x
}

// rawAxis returns i/128 - 1 + shift for i in [0, 257).
func rawAxis(shift float64) []float64 {
	x := make([]float64, CurveSize)
	for i := range x {
		x[i] = float64(i)/curveHalf - 1 + shift
	}
	return x
}

// Tanh returns the plain tanh curve over [-1, 1] (no endpoint fix).
func Tanh(Context) []float64 {
	x := rawAxis(0)
	for i, v := range x {
		x[i] = math.Tanh(v)
	}
	return x
}

// TanhOverdrive returns a soft-clipping curve tanh(drive*x).
func TanhOverdrive(drive float64) func(Context) []float64 {
	return func(Context) []float64 {
		x := ShaperAxis()
		for i, v := range x {
			x[i] = math.Tanh(drive * v)
		}
		return x
	}
}

// TanhStep returns two tanh curves offset by ±0.5, giving a staircase
// with a flat shelf around zero:
//
//	       .--
//	      /
//	  .--`
//	 /
//	-`
func TanhStep(drive float64) func(Context) []float64 {
	return func(Context) []float64 {
		right := rawAxis(-stepShift)
		left := rawAxis(stepShift)
		out := make([]float64, CurveSize)
		for i := range out {
			upper := math.Tanh(drive*right[i])/2 + stepLevel
			lower := math.Tanh(drive*left[i])/2 - stepLevel
			out[i] = upper + lower
		}
		return out
	}
}

// Table generators for the overdrive family.
var (
	ModerateOverdrive = TanhOverdrive(moderateDrive)
	Overdrive         = TanhOverdrive(overdrive)
	ViolentOverdrive  = TanhOverdrive(violentDrive)
	ExtremeOverdrive  = TanhOverdrive(extremeDrive)

	StepOverdrive        = TanhStep(stepDrive)
	ViolentStepOverdrive = TanhStep(violentStepDrive)
	ExtremeStepOverdrive = TanhStep(extremeStepDrive)
)

// TriangleFold returns sin(π(3x + (2x)^3)), a wavefolder whose fold rate
// rises toward the rails.
func TriangleFold(Context) []float64 {
	x := ShaperAxis()
	for i, v := range x {
		c := triFoldCubic * v
		x[i] = math.Sin(math.Pi * (triFoldLinear*v + c*c*c))
	}
	return x
}

// SineFold returns a sine wavefolder faded into atan(3x) through a
// Gaussian window, peak normalized to 1.
func SineFold(Context) []float64 {
	x := ShaperAxis()
	out := make([]float64, len(x))
	for i, v := range x {
		window := math.Pow(math.Exp(-v*v*sineFoldWindowWidth), sineFoldWindowPower)
		sine := math.Sin(sineFoldCycles * math.Pi * v)
		out[i] = sine*window + math.Atan(sineFoldAtanGain*v)*(1-window)
	}
	floats.Scale(1/mathutil.MaxAbs(out), out)
	return out
}
