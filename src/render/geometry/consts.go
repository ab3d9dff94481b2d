package geometry

import "math"

const (
	Epsilon = 1.19209e-07 // defined by clang for x86
)

var Infinity = math.Inf(1)
