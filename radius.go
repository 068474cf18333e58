package visvis

import "fmt"

// RadiusProfile describes the tube radius along a path: either a single
// uniform value or one value per path point.
type RadiusProfile struct {
	uniform  float64
	perPoint []float64
}

func UniformRadius(r float64) RadiusProfile {
	return RadiusProfile{uniform: r}
}

func PerPointRadius(rr []float64) RadiusProfile {
	return RadiusProfile{perPoint: rr}
}

// Resolve the profile into one radius per path point
//
// **params**
// + number of path points
//
// **returns**
// + a dense slice of n radii
func (this RadiusProfile) resolve(n int) ([]float64, error) {
	if this.perPoint != nil {
		if len(this.perPoint) != n {
			return nil, fmt.Errorf("%w: len of radii (%d) must match len of points (%d)",
				ErrInvalidInput, len(this.perPoint), n)
		}

		return append([]float64(nil), this.perPoint...), nil
	}

	rr := make([]float64, n)
	for i := range rr {
		rr[i] = this.uniform
	}

	return rr, nil
}
