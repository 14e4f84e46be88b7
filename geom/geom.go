// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the planar predicates the triangulation engine and the
// Voronoi wrapper are built on: cross products, circumcircles, perpendicular
// bisectors and line intersection, plus the error-bounded orientation and
// incircle predicates that keep near-degenerate comparisons exact.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// inCircleRelError bounds the relative rounding error of the incircle
// determinant. Results smaller than the bound times the permanent of the
// matrix are indistinguishable from zero and reported as on-circle.
const inCircleRelError = 1e-12

// InCircle reports where q lies relative to the circle through a, b and c:
// +1 strictly inside, -1 strictly outside, 0 on the circle. The triple must
// be in counterclockwise order. The test is the lifted-paraboloid determinant
// evaluated on coordinates translated to q, which stays accurate for sliver
// triangles where comparing a squared distance against a squared circumradius
// cancels catastrophically.
func InCircle(a, b, c, q r2.Point) int {
	ax, ay := a.X-q.X, a.Y-q.Y
	bx, by := b.X-q.X, b.Y-q.Y
	cx, cy := c.X-q.X, c.Y-q.Y

	alift := ax*ax + ay*ay
	blift := bx*bx + by*by
	clift := cx*cx + cy*cy

	det := alift*(bx*cy-by*cx) - blift*(ax*cy-ay*cx) + clift*(ax*by-ay*bx)
	perm := alift*(math.Abs(bx*cy)+math.Abs(by*cx)) +
		blift*(math.Abs(ax*cy)+math.Abs(ay*cx)) +
		clift*(math.Abs(ax*by)+math.Abs(ay*bx))

	switch {
	case math.Abs(det) <= inCircleRelError*perm:
		return 0
	case det > 0:
		return 1
	default:
		return -1
	}
}

// Cross returns the signed area of the parallelogram spanned by the rays o->p
// and o->q. Positive means q lies left of o->p, negative right, zero collinear.
// Callers testing the sign near degeneracy should use Orient instead.
func Cross(o, p, q r2.Point) float64 {
	return p.Sub(o).Cross(q.Sub(o))
}

// orientRelError bounds the relative rounding error of the orientation
// determinant, Shewchuk's (3+16u)u for the two-product difference. Coordinates
// rounded to a decimal grid keep every true nonzero determinant far above the
// bound, so the filtered sign is exact for such inputs.
const orientRelError = 3.3306690738754716e-16

// Orient reports the orientation of the triple o, p, q: +1 counterclockwise,
// -1 clockwise, 0 collinear. Unlike taking the sign of Cross directly, the
// determinant is compared against its rounding-error bound, so triples whose
// cross product is pure floating-point noise classify as collinear while
// arbitrarily thin real turns keep their sign.
func Orient(o, p, q r2.Point) int {
	l := (p.X - o.X) * (q.Y - o.Y)
	r := (p.Y - o.Y) * (q.X - o.X)
	det := l - r
	switch {
	case math.Abs(det) <= orientRelError*(math.Abs(l)+math.Abs(r)):
		return 0
	case det > 0:
		return 1
	default:
		return -1
	}
}

// Dist2 returns the squared distance between p and q.
func Dist2(p, q r2.Point) float64 {
	d := q.Sub(p)
	return d.Dot(d)
}

// A Line is an infinite line in parametric form.
type Line struct {
	Origin r2.Point
	Dir    r2.Point
}

// PerpendicularBisector returns the line equidistant from a and b.
func PerpendicularBisector(a, b r2.Point) Line {
	mid := a.Add(b).Mul(0.5)
	d := b.Sub(a)
	return Line{Origin: mid, Dir: d.Ortho()}
}

// Intersect returns the intersection point of two lines.
// It reports false if the lines are parallel.
func Intersect(l1, l2 Line) (r2.Point, bool) {
	denom := l1.Dir.Cross(l2.Dir)
	if denom == 0 {
		return r2.Point{}, false
	}
	t := l2.Origin.Sub(l1.Origin).Cross(l2.Dir) / denom
	return l1.Origin.Add(l1.Dir.Mul(t)), true
}

// Circumcenter returns the center of the circle through a, b and c, computed
// as the intersection of two perpendicular bisectors.
// It reports false if the points are collinear, where the bisectors are parallel.
func Circumcenter(a, b, c r2.Point) (r2.Point, bool) {
	return Intersect(PerpendicularBisector(a, b), PerpendicularBisector(b, c))
}

// Circumcircle returns the circumcenter of a, b, c together with the squared
// circumradius. The radius is kept squared so callers compare squared
// distances and never pay the square root's rounding error.
// It reports false if the points are collinear.
func Circumcircle(a, b, c r2.Point) (r2.Point, float64, bool) {
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return r2.Point{}, 0, false
	}
	return center, Dist2(center, a), true
}

// Centroid returns the area centroid of a simple polygon given by its
// vertices in order. A polygon with vanishing area falls back to the vertex
// average.
func Centroid(polygon []r2.Point) r2.Point {
	var area, cx, cy float64
	n := len(polygon)
	for i, p := range polygon {
		q := polygon[(i+1)%n]
		w := p.X*q.Y - q.X*p.Y
		area += w
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
	}
	if math.Abs(area) < 1e-300 {
		var sum r2.Point
		for _, p := range polygon {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(n))
	}
	return r2.Point{X: cx / (3 * area), Y: cy / (3 * area)}
}
