package visvis

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Precompute the cosines and sines of vertexNum evenly spaced angles
// spanning [0, 2pi). The endpoint is excluded so the seam vertex is not
// duplicated.
func circleAngles(vertexNum int) (cosines, sines []float64) {
	cosines = make([]float64, vertexNum)
	sines = make([]float64, vertexNum)

	step := 2 * math.Pi / float64(vertexNum)
	for i := range cosines {
		angle := float64(i) * step
		cosines[i] = math.Cos(angle)
		sines[i] = math.Sin(angle)
	}

	return
}

// Create a circle of points around the origin, spanned by the vectors a
// and b. Unit radius; scaling and translation are up to the caller.
//
// **params**
// + precomputed cosines of the sample angles
// + precomputed sines of the sample angles
// + first span vector
// + second span vector
//
// **returns**
// + the rim points of the circle, one per angle
func sampleCircle(cosines, sines []float64, a, b *vec3.T) []vec3.T {
	rim := make([]vec3.T, len(cosines))
	for i := range rim {
		aCompon := a.Scaled(cosines[i])
		bCompon := b.Scaled(sines[i])
		rim[i] = vec3.Add(&aCompon, &bCompon)
	}

	return rim
}
