package geometry

// Ray is the parametric line P(t) = A + t·b, where A is the origin
// and b the direction of travel. The direction is stored exactly as
// given: it is not normalized and a zero direction is legal.
type Ray struct {
	start     Point3
	direction Vec3
}

// NewRay constructs a ray from an origin and a direction. Both are
// copied in; the ray never aliases caller memory. There are no
// setters, so a ray is immutable once built.
func NewRay(origin Point3, dir Vec3) Ray {
	return Ray{start: origin, direction: dir}
}

// Origin returns the starting point of the ray.
func (r Ray) Origin() Point3 { return r.start }

// Dir returns the direction the ray travels in.
func (r Ray) Dir() Vec3 { return r.direction }

// At evaluates the ray at parameter t. Negative t addresses points
// behind the origin.
func (r Ray) At(t float64) Point3 {
	return r.start.Add(Scale(t, r.direction))
}
