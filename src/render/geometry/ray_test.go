package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRayAccessors(t *testing.T) {
	origin := NewVec3(1, 2, 3)
	dir := NewVec3(4, 5, 6)
	r := NewRay(origin, dir)
	require.Equal(t, origin, r.Origin())
	require.Equal(t, dir, r.Dir())
}

func TestRayZeroValue(t *testing.T) {
	var r Ray
	require.Equal(t, NewVec3(0, 0, 0), r.Origin())
	require.Equal(t, NewVec3(0, 0, 0), r.Dir())
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	for idx, tc := range []struct {
		t    float64
		want Point3
	}{
		{2, NewVec3(2, 4, 6)},
		{0, NewVec3(0, 0, 0)},
		{-1, NewVec3(-1, -2, -3)},
		{0.5, NewVec3(0.5, 1, 1.5)},
	} {
		t.Run(fmt.Sprintf("%d/t=%v", idx, tc.t), func(t *testing.T) {
			require.Equal(t, tc.want, r.At(tc.t))
		})
	}
}

func TestRayAtOffsetOrigin(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, -2, 4))
	require.Equal(t, NewVec3(1, -5, 13), r.At(3))
	require.Equal(t, r.Origin(), r.At(0))
}

func TestRayCopiesItsInputs(t *testing.T) {
	origin := NewVec3(1, 2, 3)
	dir := NewVec3(4, 5, 6)
	r := NewRay(origin, dir)

	origin.SetX(99)
	dir.SetZ(-99)
	require.Equal(t, NewVec3(1, 2, 3), r.Origin())
	require.Equal(t, NewVec3(4, 5, 6), r.Dir())
}

func TestRayZeroDirection(t *testing.T) {
	// Direction is not validated; a zero direction pins the ray to
	// its origin for every t.
	r := NewRay(NewVec3(7, 8, 9), NewVec3(0, 0, 0))
	require.Equal(t, r.Origin(), r.At(123.456))
}
