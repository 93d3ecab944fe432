// Package geom holds the engine's small value types.
package geom

import "fmt"

type Vector struct {
	X, Y, Z float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector) String() string {
	return fmt.Sprintf("X=%g Y=%g Z=%g", v.X, v.Y, v.Z)
}

// Quat is a rotation quaternion. Its zero value is not a valid rotation;
// use QuatIdentity or Quat{}.Identity() for "no rotation".
type Quat struct {
	X, Y, Z, W float64
}

var QuatIdentity = Quat{W: 1}

// Identity returns the identity rotation.
func (Quat) Identity() Quat {
	return QuatIdentity
}

// Add sums component-wise. Used when blending rotations.
func (q Quat) Add(o Quat) Quat {
	return Quat{X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z, W: q.W + o.W}
}

// Mul composes q and o (q applied after o).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

func (q Quat) IsIdentity() bool {
	return q == QuatIdentity
}

func (q Quat) String() string {
	return fmt.Sprintf("X=%g Y=%g Z=%g W=%g", q.X, q.Y, q.Z, q.W)
}
