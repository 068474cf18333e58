package visvis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/cppietime/visvis/internal"
)

// ringCenters averages each group of vertexNum consecutive vertices
func ringCenters(mesh *Mesh, vertexNum int) []vec3.T {
	centers := make([]vec3.T, 0, len(mesh.Vertices)/vertexNum)
	for i := 0; i < len(mesh.Vertices); i += vertexNum {
		var sum vec3.T
		for j := i; j < i+vertexNum; j++ {
			sum.Add(&mesh.Vertices[j])
		}
		centers = append(centers, sum.Scaled(1/float64(vertexNum)))
	}

	return centers
}

func TestTubeMeshStraightOpen(t *testing.T) {
	pp := Path{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}}
	vertexNum := 8

	mesh, err := TubeMesh(pp, UniformRadius(1), vertexNum)
	assert.NoError(t, err)

	// 5-ring start cap, two ring pairs, one joint, 6-ring end cap
	ringCount := tubeRingCount(len(pp), false)
	assert.Equal(t, 16, ringCount)
	assert.Len(t, mesh.Vertices, ringCount*vertexNum)
	assert.Len(t, mesh.Normals, ringCount*vertexNum)
	assert.Len(t, mesh.Faces, (ringCount-1)*vertexNum)

	// all ring centers lie on the z axis
	axis := internal.Ray{Origin: vec3.Zero, Dir: vec3.UnitZ}
	centers := ringCenters(mesh, vertexNum)
	assert.Len(t, centers, ringCount)
	for _, center := range centers {
		assert.InDelta(t, 0, axis.DistToPoint(center), 1e-9)
	}

	bufdist := 1 / 2.2

	// first sweep ring sits behind the start point, its pair past the
	// second point, the joint ring exactly on it
	assert.InDelta(t, -bufdist, centers[5][2], 1e-9)
	assert.InDelta(t, 1+bufdist, centers[6][2], 1e-9)
	assert.InDelta(t, 1, centers[7][2], 1e-9)

	// sweep and joint ring vertices at exact radial distance from their
	// ring centers
	for _, ring := range []int{5, 6, 7, 8, 9} {
		for i := ring * vertexNum; i < (ring+1)*vertexNum; i++ {
			assert.InDelta(t, 1, vec3.Distance(&mesh.Vertices[i], &centers[ring]), 1e-9)
		}
	}

	// cap rings shrink toward the tips
	capFactor := math.Sqrt(1 - math.Pow(1.0/5, 2))
	for i := 4 * vertexNum; i < 5*vertexNum; i++ {
		assert.InDelta(t, capFactor, vec3.Distance(&mesh.Vertices[i], &centers[4]), 1e-9)
	}
	for i := 0; i < vertexNum; i++ {
		assert.InDelta(t, 0, vec3.Distance(&mesh.Vertices[i], &centers[0]), 1e-9)
	}

	// every face index within bounds
	for _, face := range mesh.Faces {
		for _, idx := range face {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(mesh.Vertices))
		}
	}
}

// a straight tube must not twist: corresponding vertices of consecutive
// sweep rings differ only along the axis
func TestTubeMeshNoTwist(t *testing.T) {
	pp := Path{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {0, 0, 3}}
	vertexNum := 6

	mesh, err := TubeMesh(pp, UniformRadius(0.5), vertexNum)
	assert.NoError(t, err)

	// rings 5..12 are the sweep and joint rings of a 4-point open line
	for ring := 5; ring < 12; ring++ {
		for i := 0; i < vertexNum; i++ {
			curr := mesh.Vertices[(ring+1)*vertexNum+i]
			prev := mesh.Vertices[ring*vertexNum+i]
			diff := vec3.Sub(&curr, &prev)

			assert.InDelta(t, 0, diff[0], 1e-9)
			assert.InDelta(t, 0, diff[1], 1e-9)
		}
	}
}

func TestTubeMeshClosed(t *testing.T) {
	pp := Path{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 0}}
	vertexNum := 6

	assert.True(t, pp.Closed())

	mesh, err := TubeMesh(pp, UniformRadius(0.3), vertexNum)
	assert.NoError(t, err)

	// no caps: three rings per segment plus the loop-closing ring
	ringCount := tubeRingCount(len(pp), true)
	assert.Equal(t, 13, ringCount)
	assert.Len(t, mesh.Vertices, ringCount*vertexNum)
	assert.Len(t, mesh.Normals, ringCount*vertexNum)
	assert.Len(t, mesh.Faces, (ringCount-1)*vertexNum)

	// the closing ring sits just inside the first segment, mirroring the
	// first sweep ring's offset
	centers := ringCenters(mesh, vertexNum)
	last := centers[len(centers)-1]
	assert.InDelta(t, 0.3, last[0], 1e-9)
	assert.InDelta(t, 0, last[1], 1e-9)
	assert.InDelta(t, 0, last[2], 1e-9)
}

func TestTubeMeshPerPointRadius(t *testing.T) {
	pp := Path{{0, 0, 0}, {0, 0, 2}, {0, 0, 4}}
	vertexNum := 8

	mesh, err := TubeMesh(pp, PerPointRadius([]float64{0.5, 1, 0.25}), vertexNum)
	assert.NoError(t, err)

	centers := ringCenters(mesh, vertexNum)

	// the first sweep ring carries the first radius, its pair the second
	for i := 5 * vertexNum; i < 6*vertexNum; i++ {
		assert.InDelta(t, 0.5, vec3.Distance(&mesh.Vertices[i], &centers[5]), 1e-9)
	}
	for i := 6 * vertexNum; i < 7*vertexNum; i++ {
		assert.InDelta(t, 1, vec3.Distance(&mesh.Vertices[i], &centers[6]), 1e-9)
	}
}

func TestTubeMeshInvalidInput(t *testing.T) {
	pp := Path{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}}

	// radius sequence length mismatch
	mesh, err := TubeMesh(pp, PerPointRadius([]float64{1, 1}), 8)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, mesh)

	// too few points
	mesh, err = TubeMesh(Path{{0, 0, 0}}, UniformRadius(1), 8)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, mesh)

	// too few vertices per ring
	mesh, err = TubeMesh(pp, UniformRadius(1), 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, mesh)
}

// separate conversions share no state; identical input gives identical output
func TestTubeMeshDeterministic(t *testing.T) {
	pp := Path{{0, 0, 0}, {1, 0, 1}, {1, 2, 2}, {0, 2, 3}}

	first, err := TubeMesh(pp, UniformRadius(0.4), 12)
	assert.NoError(t, err)
	second, err := TubeMesh(pp, UniformRadius(0.4), 12)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTubeRingCount(t *testing.T) {
	assert.Equal(t, 13, tubeRingCount(2, false))
	assert.Equal(t, 16, tubeRingCount(3, false))
	assert.Equal(t, 10, tubeRingCount(4, true))
}
