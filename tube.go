package visvis

import (
	"errors"
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// ErrInvalidInput is returned by TubeMesh when the path, radius profile, or
// vertex count is malformed. Validation happens before any geometry is
// computed; no partial mesh is ever returned.
var ErrInvalidInput = errors.New("invalid input")

// ring counts of the half-sphere end caps of an open tube
const (
	startCapRings = 5
	endCapRings   = 6
)

// blend weights placing the in-between ring at a bend, approximating a
// rounded miter; the weights sum to 1
const (
	jointBlendPoint = 0.5858
	jointBlendMiter = 0.4142
)

// tubeRingCount returns the number of circular cross sections a tube over
// n path points will emit
func tubeRingCount(n int, closed bool) int {
	if closed {
		// three rings per segment plus the loop-closing ring
		return 3*(n-1) + 1
	}

	// two rings per segment, a joint ring between segments, and the caps
	return startCapRings + 2*(n-1) + (n - 2) + endCapRings
}

// From a line, create a mesh that represents the line as a tube with given
// radius. vertexNum is the number of vertices to create along the
// circumference of the tube.
//
// A path whose first and last points are exactly equal produces a closed
// loop without end caps; any other path gets approximate half-sphere caps
// at both ends. TubeMesh reads its inputs, writes nothing shared, and may
// be called concurrently.
//
// **params**
// + the path to thicken, at least 2 points
// + the radius profile, uniform or one radius per point
// + number of vertices per cross section, at least 3
//
// **returns**
// + the tube surface mesh: vertices, index-aligned normals, and quad faces
func TubeMesh(pp Path, radius RadiusProfile, vertexNum int) (*Mesh, error) {
	if len(pp) < 2 {
		return nil, fmt.Errorf("%w: a tube needs at least 2 points, got %d",
			ErrInvalidInput, len(pp))
	}

	if vertexNum < 3 {
		return nil, fmt.Errorf("%w: vertexNum must be at least 3, got %d",
			ErrInvalidInput, vertexNum)
	}

	radii, err := radius.resolve(len(pp))
	if err != nil {
		return nil, err
	}

	// vertex points of the 2D unit circle
	cosines, sines := circleAngles(vertexNum)

	// distance between two line pieces; the ring offset at each joint is
	// clamped so rings never cross for sharp bends or short segments
	dists := pp.segmentLengths()
	minDist := dists[0]
	for _, d := range dists[1:] {
		if d < minDist {
			minDist = d
		}
	}
	maxRadius := radii[0]
	for _, r := range radii[1:] {
		if r > maxRadius {
			maxRadius = r
		}
	}
	bufdist := math.Min(maxRadius, minDist/2.2)

	closed := pp.Closed()
	normals := pp.tangents(closed)

	ringCount := tubeRingCount(len(pp), closed)
	mesh := newMesh(ringCount * vertexNum)

	// number of cylinder rings placed so far
	nCylinders := 0

	// init the span vectors and the first circle
	a, b := vec3.UnitZ, vec3.UnitY
	a, b = spanVectors(&normals[0], &a, &b)
	circm := sampleCircle(cosines, sines, &a, &b)

	// an open line starts with a half sphere of contracting rings
	if !closed {
		for j := startCapRings; j >= 1; j-- {
			t := float64(j) / startCapRings
			r := math.Sqrt(1 - t*t)
			offset := normals[0].Scaled(t * bufdist)
			center := vec3.Sub(&pp[0], &offset)
			addCapRing(mesh, circm, r*radii[0], &center, &pp[0])
			nCylinders++
		}
	}

	for i := 0; i < len(pp)-1; i++ {
		// the main cylinder between two line points consists of two
		// connected circles sharing one frame
		normal1 := normals[i]
		a, b = spanVectors(&normal1, &a, &b)
		circm = sampleCircle(cosines, sines, &a, &b)

		offset := normal1.Scaled(bufdist)

		center := vec3.Add(&pp[i], &offset)
		addRing(mesh, circm, radii[i], &center)
		nCylinders++

		center = vec3.Sub(&pp[i+1], &offset)
		addRing(mesh, circm, radii[i+1], &center)
		nCylinders++

		// in-between circle to smoothly connect the line pieces
		if !closed && i == len(pp)-2 {
			break
		}

		normal2 := normals[i+1]
		normal12 := vec3.Add(&normal1, &normal2)
		normal12.Normalize()

		offset2 := normal2.Scaled(bufdist)
		ahead := vec3.Add(&pp[i+1], &offset2)
		behind := vec3.Sub(&pp[i+1], &offset)
		miter := vec3.Add(&ahead, &behind)
		miter.Scale(0.5 * jointBlendMiter)
		point12 := pp[i+1].Scaled(jointBlendPoint)
		point12.Add(&miter)

		a, b = spanVectors(&normal12, &a, &b)
		circm = sampleCircle(cosines, sines, &a, &b)
		addRing(mesh, circm, radii[i+1], &point12)
		nCylinders++
	}

	if !closed {
		// an open line ends with a half sphere of expanding rings
		last := len(pp) - 1
		for j := 0; j <= endCapRings-1; j++ {
			t := float64(j) / (endCapRings - 1)
			r := math.Sqrt(1 - t*t)
			offset := normals[last].Scaled(t * bufdist)
			center := vec3.Add(&pp[last], &offset)
			addCapRing(mesh, circm, r*radii[last], &center, &pp[last])
			nCylinders++
		}
	} else {
		// add the starting circle to the line end, closing the loop
		last := len(pp) - 1
		a, b = spanVectors(&normals[last], &a, &b)
		circm = sampleCircle(cosines, sines, &a, &b)

		offset := normals[last].Scaled(bufdist)
		center := vec3.Add(&pp[last], &offset)
		addRing(mesh, circm, radii[0], &center)
		nCylinders++
	}

	mesh.Faces = tubeFaces(nCylinders, vertexNum)

	return mesh, nil
}

// addRing scales the unit rim and translates it onto the line; the rim
// directions double as the outward cylinder normals
func addRing(mesh *Mesh, rim []vec3.T, radius float64, center *vec3.T) {
	for _, pt := range rim {
		vertex := pt.Scaled(radius)
		vertex.Add(center)

		mesh.Vertices = append(mesh.Vertices, vertex)
		mesh.Normals = append(mesh.Normals, pt)
	}
}

// addCapRing places a scaled rim whose normals radiate from the cap's tip
// point, inverted to face out of the half sphere
func addCapRing(mesh *Mesh, rim []vec3.T, radius float64, center, tip *vec3.T) {
	for _, pt := range rim {
		vertex := pt.Scaled(radius)
		vertex.Add(center)

		normal := vec3.Sub(&vertex, tip)
		normal.Normalize()

		mesh.Vertices = append(mesh.Vertices, vertex)
		mesh.Normals = append(mesh.Normals, normal.Inverted())
	}
}
