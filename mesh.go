package visvis

import (
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

type (
	Tri  [3]int
	Quad [4]int
)

// Mesh is a surface mesh: a flat list of vertices, an index-aligned list of
// per-vertex normals, and quad faces indexing into them. It is a pure data
// payload; uploading and drawing it is up to the consumer.
type Mesh struct {
	Vertices []vec3.T
	Normals  []vec3.T
	Faces    []Quad
}

func newMesh(vertexCount int) *Mesh {
	return &Mesh{
		Vertices: make([]vec3.T, 0, vertexCount),
		Normals:  make([]vec3.T, 0, vertexCount),
	}
}

// Triangulated returns the faces of the mesh split into triangles, two per
// quad, preserving winding
func (this *Mesh) Triangulated() []Tri {
	tris := make([]Tri, 0, 2*len(this.Faces))
	for _, face := range this.Faces {
		tris = append(tris,
			Tri{face[0], face[1], face[2]},
			Tri{face[0], face[2], face[3]},
		)
	}

	return tris
}

// Transform applies an affine transform to the mesh in place. Vertices get
// the full transform; normals get only its rotational part and are
// renormalized.
//
// **params**
// + the transform matrix
//
// **returns**
// + this Mesh for chaining
func (this *Mesh) Transform(mat *mat4.T) *Mesh {
	for i := range this.Vertices {
		this.Vertices[i] = mat.MulVec3(&this.Vertices[i])
	}

	for i := range this.Normals {
		rotated := mat.MulVec3W(&this.Normals[i], 0)
		this.Normals[i] = *rotated.Normalize()
	}

	return this
}

// Bounds returns the axis-aligned bounding box of the mesh vertices
func (this *Mesh) Bounds() BoundingBox {
	var bbox BoundingBox
	bbox.AddRange(this.Vertices)

	return bbox
}
