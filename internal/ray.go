package internal

import "github.com/ungerik/go3d/float64/vec3"

type Ray struct {
	Origin, Dir vec3.T
}

// Find the closest point on a ray
//
// **params**
// + point to project, Dir assumed normalized
//
// **returns**
// + the projection of the point onto the ray
func (this Ray) ClosestPoint(pt vec3.T) vec3.T {
	o2pt := vec3.Sub(&pt, &this.Origin)
	do2ptr := vec3.Dot(&o2pt, &this.Dir)
	dirScaled := this.Dir.Scaled(do2ptr)

	return vec3.Add(&this.Origin, &dirScaled)
}

// Find the distance of a point to a ray
//
// **params**
// + point to project
//
// **returns**
// + the distance
func (this Ray) DistToPoint(pt vec3.T) float64 {
	proj := this.ClosestPoint(pt)

	return vec3.Distance(&proj, &pt)
}
