package visvis

import "github.com/ungerik/go3d/float64/vec3"

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point
// is outside of it. If the bounding box is not initialized, this method has
// that side effect.
//
// **params**
// + the point
//
// **returns**
// + this BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min = *point
		this.Max = *point
		this.initialized = true

		return this
	}

	for i, val := range point[:] {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

// Add an array of points to the bounding box
//
// **params**
// + the points
//
// **returns**
// + this BoundingBox for chaining
func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

// Determines if a point is contained in the bounding box
//
// **params**
// + the point
// + the tolerance
//
// **returns**
// + true if the point lies within the box on every axis, otherwise false
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.initialized {
		return false
	}

	for i, val := range point[:] {
		if val < this.Min[i]-tol || val > this.Max[i]+tol {
			return false
		}
	}

	return true
}

// Center returns the center point of the bounding box
func (this *BoundingBox) Center() vec3.T {
	center := vec3.Add(&this.Min, &this.Max)
	center.Scale(0.5)

	return center
}
