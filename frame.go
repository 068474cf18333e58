package visvis

import "github.com/ungerik/go3d/float64/vec3"

// Given the tangent of a tube segment and the span vectors of the previous
// segment, compute a new pair of span vectors orthogonal to the tangent and
// to each other, rotated as little as possible away from the previous pair.
// This keeps the cross section from visibly twisting from one ring to the
// next.
//
// **params**
// + tangent of the current segment
// + first span vector of the previous ring
// + second span vector of the previous ring
//
// **returns**
// + the two new span vectors, unit length
func spanVectors(tangent, prevA, prevB *vec3.T) (a, b vec3.T) {
	// calculate a from the previous b
	a1 := vec3.Cross(prevB, tangent)

	if a1.Length() < 0.001 {
		// the tangent and prevB point in the same or reverse direction
		// -> calculate b from the previous a
		b1 := vec3.Cross(prevA, tangent)
		a1 = vec3.Cross(&b1, tangent)
	}

	// consider the opposite direction, keeping whichever stays
	// closest to the previous orientation
	a2 := a1.Inverted()
	if vec3.Distance(prevA, &a1) > vec3.Distance(prevA, &a2) {
		a1 = a2
	}

	b1 := vec3.Cross(&a1, tangent)

	// don't flip b as well: that would make backfacing faces

	a1.Normalize()
	b1.Normalize()

	return a1, b1
}
