// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// A hull is the triangulation-so-far of one contiguous slice of the sorted
// points. It tracks its extreme points and which arena points it currently
// owns; ids come from a per-triangulation counter so ownership tests during a
// merge are plain int comparisons.
type hull struct {
	id                  int
	leftmost, rightmost PointID
	points              []PointID
}

// newHull claims ownership of the given points, which must already be sorted
// by the point ordering.
func (t *Triangulation) newHull(points []PointID) *hull {
	h := &hull{id: t.nextHullID, points: points}
	t.nextHullID++
	for _, id := range points {
		t.Points[id].hull = h.id
	}
	if len(points) > 0 {
		h.leftmost = points[0]
		h.rightmost = points[len(points)-1]
	} else {
		h.leftmost, h.rightmost = NoPoint, NoPoint
	}
	return h
}

// absorb moves right's points into left after their edges have been joined.
func (t *Triangulation) absorb(left, right *hull) *hull {
	for _, id := range right.points {
		t.Points[id].hull = left.id
	}
	left.points = append(left.points, right.points...)
	left.rightmost = right.rightmost
	return left
}

// hullCW returns the next point clockwise along p's hull boundary: one
// rotational step back from first wraps across the outside wedge to the
// boundary neighbor on the other side.
func (t *Triangulation) hullCW(p PointID) PointID {
	first := t.Points[p].first
	if first == NoPoint {
		return NoPoint
	}
	return t.clockwise(p, first)
}

// tangents finds the lower and upper tangent edges of two hulls known to be
// disjoint with left entirely before right in the point ordering. Each search
// alternately advances whichever endpoint still has a hull neighbor on the
// wrong side of the candidate edge. The walks are directed: each endpoint
// carries the boundary neighbor it arrived from and rotates past it, so a
// degenerate path-shaped hull is traversed correctly in both directions, where
// following first references alone would bounce between a point and its single
// successor. A bound on the number of advances guards against walking forever
// on hulls that violate the disjointness invariant.
func (t *Triangulation) tangents(left, right *hull) (lower, upper [2]PointID) {
	bound := 2 * (len(left.points) + len(right.points))

	x, y := left.rightmost, right.leftmost
	fx, fy := t.Points[x].first, t.hullCW(y)
	for steps := 0; ; steps++ {
		if steps > bound {
			fatalf("delaunay: no lower tangent between hulls at %v and %v after %d steps",
				t.Points[left.rightmost], t.Points[right.leftmost], steps)
		}
		if fx != NoPoint {
			if zx := t.clockwise(x, fx); t.rightOf(zx, x, y) {
				x, fx = zx, x
				continue
			}
		}
		if fy != NoPoint {
			if zy := t.counterclockwise(y, fy); t.rightOf(zy, x, y) {
				y, fy = zy, y
				continue
			}
		}
		break
	}
	lower = [2]PointID{x, y}

	x, y = left.rightmost, right.leftmost
	fx, fy = t.hullCW(x), t.Points[y].first
	for steps := 0; ; steps++ {
		if steps > bound {
			fatalf("delaunay: no upper tangent between hulls at %v and %v after %d steps",
				t.Points[left.rightmost], t.Points[right.leftmost], steps)
		}
		if fx != NoPoint {
			if zx := t.counterclockwise(x, fx); t.leftOf(zx, x, y) {
				x, fx = zx, x
				continue
			}
		}
		if fy != NoPoint {
			if zy := t.clockwise(y, fy); t.leftOf(zy, x, y) {
				y, fy = zy, y
				continue
			}
		}
		break
	}
	upper = [2]PointID{x, y}

	return lower, upper
}
