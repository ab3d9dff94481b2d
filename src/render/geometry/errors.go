package geometry

import "errors"

// ErrIndexOutOfRange reports a component index outside {0, 1, 2}. It
// is the only failure this package produces; match it with errors.Is.
var ErrIndexOutOfRange = errors.New("geometry: vector index must be 0, 1, or 2")
