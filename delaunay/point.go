// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// PointID indexes a Point in a Triangulation's arena. Adjacency lists, first
// references and hull bookkeeping all store ids rather than pointers, so
// ownership checks during a merge reduce to integer comparisons.
type PointID int

// NoPoint marks an absent point reference, such as the first neighbor of an
// isolated point.
const NoPoint PointID = -1

// A Point is one input site together with its adjacency ring. Neighbors are
// kept sorted by the angle from this point to each neighbor, so reading the
// ring in slice order is a counterclockwise rotation. The first reference
// seeds convex-hull walks: for a hull point it names the next hull point in
// counterclockwise order.
type Point struct {
	X, Y float64
	// Name is the optional display name given on input.
	Name string
	// Index is the point's position in the caller's original input.
	Index int

	neighbors []PointID
	first     PointID
	hull      int
}

func (p Point) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// azimuth is the angle of the ray p->q, measured counterclockwise from the
// negative-X axis and folded into [0, 2π). Measuring from negative X keeps
// the comparison total on rounded coordinates: a neighbor due left sits at
// exactly zero rather than straddling the atan2 branch cut at ±π.
func azimuth(p, q *Point) float64 {
	a := math.Atan2(q.Y-p.Y, q.X-p.X) + math.Pi
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// addNeighbor inserts q into p's angular ring, keeping the ring sorted by
// azimuth. Two neighbors at the same angle would make the rotational order
// ambiguous, so that is a fatal invariant violation. The first reference is
// set when previously unset or when becomesFirst is requested.
func (t *Triangulation) addNeighbor(p, q PointID, becomesFirst bool) {
	pp := &t.Points[p]
	a := azimuth(pp, &t.Points[q])
	i := sort.Search(len(pp.neighbors), func(i int) bool {
		return azimuth(pp, &t.Points[pp.neighbors[i]]) >= a
	})
	if i < len(pp.neighbors) && azimuth(pp, &t.Points[pp.neighbors[i]]) == a {
		fatalf("delaunay: %v already has neighbor %v at the angle of %v",
			*pp, t.Points[pp.neighbors[i]], t.Points[q])
	}
	pp.neighbors = append(pp.neighbors, NoPoint)
	copy(pp.neighbors[i+1:], pp.neighbors[i:])
	pp.neighbors[i] = q
	if pp.first == NoPoint || becomesFirst {
		pp.first = q
	}
}

// removeNeighbor deletes q from p's ring. If q was p's first, first advances
// to the next counterclockwise neighbor, or becomes NoPoint when the ring
// empties. Removing an absent neighbor is a fatal invariant violation.
func (t *Triangulation) removeNeighbor(p, q PointID) {
	pp := &t.Points[p]
	i := t.neighborIndex(p, q)
	pp.neighbors = append(pp.neighbors[:i], pp.neighbors[i+1:]...)
	if pp.first != q {
		return
	}
	if len(pp.neighbors) == 0 {
		pp.first = NoPoint
		return
	}
	pp.first = pp.neighbors[i%len(pp.neighbors)]
}

// neighborIndex locates q in p's ring by binary search on azimuth.
func (t *Triangulation) neighborIndex(p, q PointID) int {
	pp := &t.Points[p]
	a := azimuth(pp, &t.Points[q])
	i := sort.Search(len(pp.neighbors), func(i int) bool {
		return azimuth(pp, &t.Points[pp.neighbors[i]]) >= a
	})
	if i == len(pp.neighbors) || pp.neighbors[i] != q {
		fatalf("delaunay: %v is not a neighbor of %v", t.Points[q], *pp)
	}
	return i
}

// clockwise steps one position clockwise from the neighbor from in p's ring,
// skipping neighbors whose hull differs from p's. Mid-merge, edges to the
// opposite hull are added before the old cross-hull edges are removed; the
// skip keeps the walk from crossing onto the wrong hull half. If the scan
// wraps all the way around, from itself is returned.
func (t *Triangulation) clockwise(p, from PointID) PointID {
	pp := &t.Points[p]
	n := len(pp.neighbors)
	if n == 0 {
		return NoPoint
	}
	i := t.neighborIndex(p, from)
	for step := 1; step < n; step++ {
		cand := pp.neighbors[((i-step)%n+n)%n]
		if t.Points[cand].hull == pp.hull {
			return cand
		}
	}
	return from
}

// counterclockwise is the rotational mirror of clockwise.
func (t *Triangulation) counterclockwise(p, from PointID) PointID {
	pp := &t.Points[p]
	n := len(pp.neighbors)
	if n == 0 {
		return NoPoint
	}
	i := t.neighborIndex(p, from)
	for step := 1; step < n; step++ {
		cand := pp.neighbors[(i+step)%n]
		if t.Points[cand].hull == pp.hull {
			return cand
		}
	}
	return from
}
