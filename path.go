package visvis

import (
	"github.com/ungerik/go3d/float64/vec3"

	. "github.com/cppietime/visvis/internal"
)

// Path is an ordered sequence of 3D points forming a polyline. A path whose
// first and last points are exactly equal is treated as a closed loop.
type Path []vec3.T

// Closed reports whether the path loops back onto its start. Equality is
// exact; resampled paths should snap their last point to the first.
func (this Path) Closed() bool {
	return len(this) > 1 && this[0] == this[len(this)-1]
}

// Length returns the total arc length of the path
func (this Path) Length() float64 {
	var lsum float64
	for i := 0; i < len(this)-1; i++ {
		lsum += vec3.Distance(&this[i], &this[i+1])
	}

	return lsum
}

func (this Path) segmentLengths() []float64 {
	dists := make([]float64, len(this)-1)
	for i := range dists {
		dists[i] = vec3.Distance(&this[i], &this[i+1])
	}

	return dists
}

// Compute the per-point tangents of the path, each the unit vector from
// point i+1 to point i. The appended final tangent is the first segment's
// forward direction for a closed path, or the last segment's forward
// direction for an open one, so the end of the tube always has a defined
// direction to grow along.
//
// **returns**
// + one tangent per path point
func (this Path) tangents(closed bool) []vec3.T {
	normals := make([]vec3.T, len(this))
	for i := 0; i < len(this)-1; i++ {
		normals[i] = vec3.Sub(&this[i], &this[i+1])
	}

	if closed {
		normals[len(this)-1] = vec3.Sub(&this[1], &this[0])
	} else {
		normals[len(this)-1] = vec3.Sub(&this[len(this)-1], &this[len(this)-2])
	}

	for i := range normals {
		normals[i].Normalize()
	}

	return normals
}

// Simplify returns a path with collinear-within-tol interior points removed,
// recursively keeping the point farthest from each chord (Douglas-Peucker)
//
// **params**
// + max allowed distance from a removed point to the simplified path
//
// **returns**
// + the simplified path; endpoints are always kept
func (this Path) Simplify(tol float64) Path {
	if len(this) <= 2 {
		return append(Path(nil), this...)
	}

	simplified := this.simplifyRange(0, len(this)-1, tol)

	return append(simplified, this[len(this)-1])
}

// simplifyRange keeps this[first] and the farthest-point splits over
// (first, last); this[last] itself is appended by the caller
func (this Path) simplifyRange(first, last int, tol float64) Path {
	var maxDist float64
	index := first

	for i := first + 1; i < last; i++ {
		d := distToSegment(&this[first], &this[i], &this[last])
		if d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist <= tol {
		return Path{this[first]}
	}

	left := this.simplifyRange(first, index, tol)
	right := this.simplifyRange(index, last, tol)

	return append(left, right...)
}

// Find the distance of a point to a segment
//
// **params**
// + first point of segment
// + point to project
// + second point of segment
//
// **returns**
// + the distance
func distToSegment(a, b, c *vec3.T) float64 {
	// check if ac is zero length
	acv := vec3.Sub(c, a)
	acl := acv.Length()

	bma := vec3.Sub(b, a)

	if acl < Tolerance {
		return bma.Length()
	}

	acv.Normalize()

	// project b - a onto the segment direction, clamped to the segment
	p := vec3.Dot(&bma, &acv)
	if p < 0 {
		p = 0
	} else if p > acl {
		p = acl
	}

	acv.Scale(p).Add(a)

	return vec3.Distance(&acv, b)
}
