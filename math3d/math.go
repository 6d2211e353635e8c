// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math3d is a generic vector, matrix, quaternion and bounding
// volume package for 3D graphics, instantiated for float32 and float64.
//
// Matrices are row-major and use the row-vector convention: a point v
// is transformed as v * M, translation lives in row 3, and a.Mul(b)
// applies a first and then b. Quaternion multiplication follows the
// same order, so QuaternionToMatrix(a.Mul(b)) equals
// QuaternionToMatrix(a).Mul(QuaternionToMatrix(b)).
package math3d

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// The float32 instantiation goes through chewxy/math32, which has
// optimized single precision implementations; float64 uses math.

// Float is the set of scalar types the vector and matrix types are
// instantiated with.
type Float interface {
	constraints.Float
}

// Number is the set of scalar types accepted by the scalar utilities.
type Number interface {
	constraints.Integer | constraints.Float
}

// Mathematical constants.
const (
	Pi     = math.Pi
	Pi2    = 2 * math.Pi
	PiDiv2 = math.Pi / 2
	Sqrt2  = math.Sqrt2
	Sqrt3  = 1.7320508075688772935274463415058723669428052538103806280558069794

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Machine epsilon for the two float instantiations.
const (
	Epsilon32 = 1.1920928955078125e-07
	Epsilon64 = 2.220446049250313080847263336181640625e-16
)

// BoundOverlap is the result of a three-way containment test.
type BoundOverlap int32

const (
	// Yes means the tested volume lies completely inside.
	Yes BoundOverlap = iota

	// No means the tested volume lies completely outside.
	No

	// Partial means the tested volume straddles the boundary.
	Partial
)

func (b BoundOverlap) String() string {
	switch b {
	case Yes:
		return "Yes"
	case No:
		return "No"
	case Partial:
		return "Partial"
	}
	return "BoundOverlap(?)"
}

func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

func isFloat[T Number]() bool {
	return T(1)/T(2) != 0
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1 if x < 0, 1 if x > 0 and 0 otherwise.
func Sign[T Number](x T) T {
	switch {
	case x < 0:
		return T(0) - 1
	case x > 0:
		return 1
	}
	return 0
}

// Sqr returns x * x.
func Sqr[T Number](x T) T {
	return x * x
}

// Cube returns x * x * x.
func Cube[T Number](x T) T {
	return x * x * x
}

// DegToRad converts a number from degrees to radians.
func DegToRad[T Float](degrees T) T {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg[T Float](radians T) T {
	return radians * RadToDegFactor
}

// Floor returns the greatest integer value less than or equal to x.
// The value goes through an int conversion, so the result is
// unspecified when x is outside the range of int.
func Floor[T Float](x T) T {
	i := T(int(x))
	if i > x {
		i--
	}
	return i
}

// Frac returns the fractional part of x, with the sign of x.
func Frac[T Float](x T) T {
	return x - T(int(x))
}

// Round rounds x to the nearest integer, halves away from zero.
// The same int range limitation as [Floor] applies.
func Round[T Float](x T) T {
	if x > 0 {
		return T(int(x + 0.5))
	}
	return -T(int(0.5 - x))
}

// Trunc drops the fractional part of x.
// The same int range limitation as [Floor] applies.
func Trunc[T Float](x T) T {
	return T(int(x))
}

// Min3 returns the smallest of a, b and c.
func Min3[T Number](a, b, c T) T {
	return min(a, b, c)
}

// Max3 returns the largest of a, b and c.
func Max3[T Number](a, b, c T) T {
	return max(a, b, c)
}

// Mod returns the remainder of x / y: the integer remainder for
// integer types and the floating-point remainder (fmod) for floats.
func Mod[T Number](x, y T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(x), float64(y)))
	}
	return T(int64(x) % int64(y))
}

// Clamp returns val limited to the range [low, high].
func Clamp[T Number](val, low, high T) T {
	return max(low, min(high, val))
}

// Wrap wraps val into the half-open range [low, high).
func Wrap[T Number](val, low, high T) T {
	rang := high - low
	if rang <= 0 {
		return low
	}
	if isFloat[T]() {
		ret := Mod(val-low, rang)
		if ret < 0 {
			ret += rang
		}
		ret += low
		if ret >= high {
			return low
		}
		return ret
	}
	ret := val
	for ret >= high {
		ret -= rang
	}
	for ret < low {
		ret += rang
	}
	return ret
}

// Mirror reflects val back and forth at low and high until it lies
// within [low, high].
func Mirror[T Number](val, low, high T) T {
	if high <= low {
		return low
	}
	if isFloat[T]() {
		rang := high - low
		ret := Mod(val-low, 2*rang)
		if ret < 0 {
			ret += 2 * rang
		}
		if ret > rang {
			ret = 2*rang - ret
		}
		return Clamp(low+ret, low, high)
	}
	ret := val
	for ret > high || ret < low {
		if ret > high {
			ret = 2*high - ret
		} else {
			ret = 2*low - ret
		}
	}
	return ret
}

// IsOdd returns true if x is odd.
func IsOdd[T Number](x T) bool {
	return Mod(x, 2) != 0
}

// IsEven returns true if x is even.
func IsEven[T Number](x T) bool {
	return !IsOdd(x)
}

// InBound returns true if val is within [low, high].
func InBound[T Number](val, low, high T) bool {
	return val >= low && val <= high
}

// Equal compares two scalars: exactly for integer types and within
// machine epsilon for floating point types.
func Equal[T Number](a, b T) bool {
	if !isFloat[T]() {
		return a == b
	}
	d := float64(Abs(a - b))
	var z T
	if unsafe.Sizeof(z) == 4 {
		return d <= Epsilon32
	}
	return d <= Epsilon64
}

// EqualTol compares two scalars within the given tolerance.
func EqualTol[T Float](a, b, tol T) bool {
	return Abs(a-b) <= tol
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// RecipSqrt returns 1 / Sqrt(x).
func RecipSqrt[T Float](x T) T {
	return 1 / Sqrt(x)
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	if is32[T]() {
		return T(math32.Pow(float32(x), float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	if is32[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	if is32[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(math.Log(float64(x)))
}

// Log10 returns the decimal logarithm of x.
func Log10[T Float](x T) T {
	if is32[T]() {
		return T(math32.Log10(float32(x)))
	}
	return T(math.Log10(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[T Float](x T) (sin, cos T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(x))
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	if is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
func Asin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Asin(float32(x)))
	}
	return T(math.Asin(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

// Atan returns the arctangent, in radians, of x.
func Atan[T Float](x T) T {
	if is32[T]() {
		return T(math32.Atan(float32(x)))
	}
	return T(math.Atan(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T Float](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Sinh returns the hyperbolic sine of x.
func Sinh[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sinh(float32(x)))
	}
	return T(math.Sinh(float64(x)))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cosh(float32(x)))
	}
	return T(math.Cosh(float64(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	if is32[T]() {
		return T(math32.Tanh(float32(x)))
	}
	return T(math.Tanh(float64(x)))
}

// Infinity returns positive infinity of type T.
func Infinity[T Float]() T {
	return T(math.Inf(1))
}

// MaxValue returns the largest finite value of type T.
func MaxValue[T Float]() T {
	if is32[T]() {
		return T(math.MaxFloat32)
	}
	mx := math.MaxFloat64
	return T(mx)
}
