package domain

import "math"

// Vec3 is an [x, y, z] world coordinate. Ground-level items keep y at 0.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// DistanceXZ is the Euclidean distance between v and o ignoring height.
func (v Vec3) DistanceXZ(o Vec3) float64 {
	return math.Hypot(v[0]-o[0], v[2]-o[2])
}
