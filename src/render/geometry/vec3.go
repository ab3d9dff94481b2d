// Package geometry provides the value types a ray tracer is built on:
// a three-component double-precision vector and the parametric ray
// P(t) = A + t·b. Everything here is a plain value with no hidden
// state, cheap to copy into per-pixel inner loops.
package geometry

import (
	"fmt"
	"math"
)

// Scalar is a real number in vector arithmetic. It is an alias rather
// than a defined type so results flow into math package calls without
// conversions.
type Scalar = float64

// Vec3 is a three-component double-precision vector. The zero value is
// the zero vector. Binary operators are pure and return new values;
// the *Assign family and the setters mutate the receiver in place.
//
// Degenerate floating-point inputs are not guarded anywhere in the
// type: dividing by zero or normalizing a zero-length vector produces
// ±Inf/NaN components per IEEE 754. Callers rely on that propagation
// to detect degenerate geometry, so it must not be "fixed" with
// per-call checks.
type Vec3 struct {
	e [3]float64
}

// Point3 marks a Vec3 used as a location in 3D space.
type Point3 = Vec3

// Color marks a Vec3 used as an RGB triple.
type Color = Vec3

// NewVec3 constructs a vector from its x, y and z components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{e: [3]float64{x, y, z}}
}

// X returns the x-component.
func (v Vec3) X() float64 { return v.e[0] }

// Y returns the y-component.
func (v Vec3) Y() float64 { return v.e[1] }

// Z returns the z-component.
func (v Vec3) Z() float64 { return v.e[2] }

// SetX replaces the x-component.
func (v *Vec3) SetX(x float64) { v.e[0] = x }

// SetY replaces the y-component.
func (v *Vec3) SetY(y float64) { v.e[1] = y }

// SetZ replaces the z-component.
func (v *Vec3) SetZ(z float64) { v.e[2] = z }

// Neg returns the vector with every component sign-flipped. The
// receiver is left untouched.
func (v Vec3) Neg() Vec3 {
	return NewVec3(-v.e[0], -v.e[1], -v.e[2])
}

// At returns the component at index i, mapping 0, 1, 2 to x, y, z.
// The index is unsigned, so the only invalid inputs are i > 2, which
// fail with ErrIndexOutOfRange.
func (v Vec3) At(i uint) (float64, error) {
	if i > 2 {
		return 0, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	return v.e[i], nil
}

// SetAt replaces the component at index i, with the same index
// contract as At. On an out-of-range index the receiver is left
// untouched.
func (v *Vec3) SetAt(i uint, x float64) error {
	if i > 2 {
		return fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	v.e[i] = x
	return nil
}

// AddAssign adds u to the receiver component-wise and returns the
// receiver so calls can chain.
func (v *Vec3) AddAssign(u Vec3) *Vec3 {
	v.e[0] += u.e[0]
	v.e[1] += u.e[1]
	v.e[2] += u.e[2]
	return v
}

// ScaleAssign multiplies every component by t and returns the
// receiver so calls can chain.
func (v *Vec3) ScaleAssign(t float64) *Vec3 {
	v.e[0] *= t
	v.e[1] *= t
	v.e[2] *= t
	return v
}

// DivAssign divides every component by t and returns the receiver.
// t == 0 is not guarded; the components become ±Inf or NaN.
func (v *Vec3) DivAssign(t float64) *Vec3 {
	return v.ScaleAssign(1 / t)
}

// Add returns the component-wise sum v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return NewVec3(v.e[0]+u.e[0], v.e[1]+u.e[1], v.e[2]+u.e[2])
}

// Sub returns the component-wise difference v - u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return NewVec3(v.e[0]-u.e[0], v.e[1]-u.e[1], v.e[2]-u.e[2])
}

// Hadamard returns the element-wise product of v and u.
func (v Vec3) Hadamard(u Vec3) Vec3 {
	return NewVec3(v.e[0]*u.e[0], v.e[1]*u.e[1], v.e[2]*u.e[2])
}

// Scale returns v with every component multiplied by t.
func (v Vec3) Scale(t float64) Vec3 {
	return NewVec3(v.e[0]*t, v.e[1]*t, v.e[2]*t)
}

// Scale returns t·v. It delegates to Vec3.Scale, so the scalar
// product commutes by construction.
func Scale(t float64, v Vec3) Vec3 {
	return v.Scale(t)
}

// Div returns v with every component divided by t. t == 0 is not
// guarded.
func (v Vec3) Div(t float64) Vec3 {
	return NewVec3(v.e[0]/t, v.e[1]/t, v.e[2]/t)
}

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) Scalar {
	return v.e[0]*u.e[0] + v.e[1]*u.e[1] + v.e[2]*u.e[2]
}

// Cross returns the right-handed cross product of v and u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return NewVec3(
		v.e[1]*u.e[2]-v.e[2]*u.e[1],
		v.e[2]*u.e[0]-v.e[0]*u.e[2],
		v.e[0]*u.e[1]-v.e[1]*u.e[0],
	)
}

// LengthSquared returns the sum of the squared components.
func (v Vec3) LengthSquared() float64 {
	return v.e[0]*v.e[0] + v.e[1]*v.e[1] + v.e[2]*v.e[2]
}

// Length returns the euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns the vector scaled to length 1. A zero-length input
// yields NaN components; callers that care must check beforehand.
func (v Vec3) Unit() Vec3 {
	return v.Div(v.Length())
}

// String renders the vector as "[x, y, z]" for diagnostics. There is
// no corresponding parse operation.
func (v Vec3) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.e[0], v.e[1], v.e[2])
}
