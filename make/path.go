package make

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/cppietime/visvis"
)

// Line returns a straight path from first to last
//
// **params**
// + start point
// + end point
// + number of line pieces, at least 1
//
// **returns**
// + a path of segments+1 points
func Line(first, last *vec3.T, segments int) visvis.Path {
	if segments < 1 {
		segments = 1
	}

	pts := make(visvis.Path, segments+1)
	for i := range pts {
		pts[i] = vec3.Interpolate(first, last, float64(i)/float64(segments))
	}

	return pts
}

// Generate a polyline approximation of an arbitrary arc
//
// **params**
// + the center of the arc
// + the xaxis of the arc
// + orthogonal yaxis of the arc
// + radius of the arc
// + start angle of the arc, between 0 and 2pi
// + end angle of the arc, between 0 and 2pi, greater than the start angle
// + number of line pieces, at least 1
//
// **returns**
// + a path of segments+1 points
func Arc(center, xaxis, yaxis *vec3.T, radius, startAngle, endAngle float64, segments int) visvis.Path {
	if segments < 1 {
		segments = 1
	}

	// if the end angle is less than the start angle, do a full circle
	if endAngle < startAngle {
		endAngle = 2*math.Pi + startAngle
	}

	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	pts := make(visvis.Path, segments+1)
	step := (endAngle - startAngle) / float64(segments)

	for i := range pts {
		angle := startAngle + float64(i)*step
		xCompon := xaxisNorm.Scaled(radius * math.Cos(angle))
		yCompon := yaxisNorm.Scaled(radius * math.Sin(angle))
		offset := vec3.Add(&xCompon, &yCompon)
		pts[i] = vec3.Add(center, &offset)
	}

	return pts
}

// Create a circle
//
// The returned path is exactly closed: its last point is a copy of the
// first, so tubes built from it form a loop without end caps.
//
// **params**
// + the center of the circle
// + the xaxis of the circle
// + orthogonal yaxis of the circle
// + radius of the circle
// + number of line pieces, at least 3
//
// **returns**
// + a closed path of segments+1 points
func Circle(center, xaxis, yaxis *vec3.T, radius float64, segments int) visvis.Path {
	if segments < 3 {
		segments = 3
	}

	pts := Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi, segments)

	// snap the seam shut; closedness is inferred from exact equality
	pts[len(pts)-1] = pts[0]

	return pts
}

// Generate a helical path winding around an axis
//
// **params**
// + position of the base of the helix
// + normalized axis of the helix
// + xaxis in the plane of the first winding
// + radius of the helix
// + axial advance per full turn
// + number of turns, fractional turns allowed
// + number of line pieces per turn
//
// **returns**
// + a path from the base winding up along the axis
func Helix(base, axis, xaxis *vec3.T, radius, pitch, turns float64, segsPerTurn int) visvis.Path {
	if segsPerTurn < 3 {
		segsPerTurn = 3
	}

	yaxis := vec3.Cross(axis, xaxis)
	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	segments := int(math.Ceil(turns * float64(segsPerTurn)))
	if segments < 1 {
		segments = 1
	}

	pts := make(visvis.Path, segments+1)
	step := turns * 2 * math.Pi / float64(segments)

	for i := range pts {
		angle := float64(i) * step
		xCompon := xaxisNorm.Scaled(radius * math.Cos(angle))
		yCompon := yaxisNorm.Scaled(radius * math.Sin(angle))
		zCompon := axis.Scaled(angle / (2 * math.Pi) * pitch)

		pt := vec3.Add(&xCompon, &yCompon)
		pt.Add(&zCompon)
		pts[i] = vec3.Add(base, &pt)
	}

	return pts
}
