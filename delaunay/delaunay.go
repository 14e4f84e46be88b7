// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes planar Delaunay triangulations with the
// Lee-Schachter divide-and-conquer algorithm: the sorted points are split
// recursively, the halves are triangulated, and neighboring hulls are merged
// along their tangent edges, flipping edges that violate the
// empty-circumcircle property.
package delaunay

import (
	"errors"
	"fmt"
	"sort"

	"github.com/deltille/voronoi/geom"
)

const (
	// DefaultPrecision is the number of decimal digits coordinates are
	// rounded to at ingestion. Snapping inputs to a decimal grid bounds how
	// thin a real triangle can get, which is what keeps the error-filtered
	// orientation and incircle predicates exact.
	DefaultPrecision = 6
)

// A Site is one input coordinate, optionally named.
type Site struct {
	X, Y float64
	Name string
}

// Options hold the engine configuration.
type Options struct {
	Precision int
	Tracer    Tracer
}

// An Option configures a Triangulation before it is built.
type Option func(*Options) error

// WithPrecision sets the rounding precision in decimal digits.
func WithPrecision(digits int) Option {
	return func(o *Options) error {
		if digits < 1 || digits > 15 {
			return fmt.Errorf("delaunay: precision must be in [1, 15], got %d", digits)
		}
		o.Precision = digits
		return nil
	}
}

// WithTracer attaches a Tracer to the engine.
func WithTracer(tr Tracer) Option {
	return func(o *Options) error {
		if tr == nil {
			return errors.New("delaunay: tracer must be non-nil")
		}
		o.Tracer = tr
		return nil
	}
}

// A Triangulation is the neighbor graph of one point set. Points holds the
// arena in sorted order; PointIDs index into it. The graph is built once by
// New and read-only afterwards.
type Triangulation struct {
	Points []Point

	opts       Options
	nextHullID int
}

// New triangulates the given sites. The input need not be sorted, but must be
// non-empty and free of exactly coincident coordinates after rounding;
// deduplication or jitter is the caller's responsibility.
func New(sites []Site, setters ...Option) (tr *Triangulation, err error) {
	opts := Options{
		Precision: DefaultPrecision,
		Tracer:    nopTracer{},
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(sites) == 0 {
		return nil, errors.New("delaunay: at least one point required")
	}

	t := &Triangulation{
		Points: make([]Point, len(sites)),
		opts:   opts,
	}
	for i, s := range sites {
		t.Points[i] = Point{
			X:     geom.RoundTo(s.X, opts.Precision),
			Y:     geom.RoundTo(s.Y, opts.Precision),
			Name:  s.Name,
			Index: i,
			first: NoPoint,
			hull:  -1,
		}
	}
	sort.Slice(t.Points, func(i, j int) bool {
		a, b := t.Points[i], t.Points[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for i := 1; i < len(t.Points); i++ {
		p, q := t.Points[i-1], t.Points[i]
		if p.X == q.X && p.Y == q.Y {
			return nil, fmt.Errorf("delaunay: coincident points %v at input indices %d and %d",
				p, p.Index, q.Index)
		}
	}

	defer func() {
		if e := recoverInvariant(recover()); e != nil {
			tr, err = nil, e
		}
	}()

	ids := make([]PointID, len(t.Points))
	for i := range ids {
		ids[i] = PointID(i)
	}
	t.build(ids)

	return t, nil
}

// Len returns the number of points.
func (t *Triangulation) Len() int {
	return len(t.Points)
}

// Neighbors returns p's adjacent points in counterclockwise angular order.
// The returned slice is owned by the triangulation and must not be modified.
func (t *Triangulation) Neighbors(p PointID) []PointID {
	if p < 0 || int(p) >= len(t.Points) {
		panic("Neighbors: point id out of range")
	}
	return t.Points[p].neighbors
}

// First returns p's first neighbor, the reference seeding convex-hull walks,
// or NoPoint for an isolated point.
func (t *Triangulation) First(p PointID) PointID {
	if p < 0 || int(p) >= len(t.Points) {
		panic("First: point id out of range")
	}
	return t.Points[p].first
}

// build triangulates a contiguous slice of sorted point ids and returns its
// hull. Slices of up to three points are bases; larger slices split at the
// midpoint and merge the two halves.
func (t *Triangulation) build(ids []PointID) *hull {
	if len(ids) <= 3 {
		return t.baseHull(ids)
	}
	mid := len(ids) / 2
	return t.merge(t.build(ids[:mid:mid]), t.build(ids[mid:]))
}

// baseHull triangulates zero to three points directly. Edges are seeded so
// that following first references counterclockwise walks the hull boundary:
// a triangle ring is ordered by the orientation of the sorted triple, and a
// collinear triple becomes a left-to-right path with no fabricated cycle.
func (t *Triangulation) baseHull(ids []PointID) *hull {
	h := t.newHull(ids)
	switch len(ids) {
	case 0, 1:
	case 2:
		t.join(ids[0], ids[1], true, true)
	case 3:
		p1, p2, p3 := ids[0], ids[1], ids[2]
		switch c := t.cross(p1, p2, p3); {
		case c > 0:
			// p2 below the p1-p3 diagonal: hull reads p1, p2, p3.
			t.join(p1, p2, true, false)
			t.join(p2, p3, true, false)
			t.join(p3, p1, true, false)
		case c < 0:
			// p2 above the diagonal: hull reads p1, p3, p2.
			t.join(p1, p3, true, false)
			t.join(p3, p2, true, false)
			t.join(p2, p1, true, false)
		default:
			t.join(p1, p2, true, false)
			t.join(p2, p3, true, false)
		}
	}
	return h
}

// merge stitches two tangent-bounded hulls into one. The sweep starts at the
// lower tangent and rises edge by edge: each iteration joins the current base
// edge, discards right- and left-side edges whose circumcircles contain the
// next candidate, then advances the endpoint whose candidate wins the
// circumcircle comparison. The upper tangent is joined explicitly at the end;
// the base edges in between are interior to the merged hull.
func (t *Triangulation) merge(left, right *hull) *hull {
	lower, upper := t.tangents(left, right)

	l, r := lower[0], lower[1]
	onLower := true
	for !(l == upper[0] && r == upper[1]) {
		// The lower tangent is a boundary edge of the merged hull, so it
		// reseeds l's first; every later base edge is interior.
		t.join(l, r, onLower, false)
		onLower = false

		rcand := NoPoint
		if r1 := t.clockwise(r, l); t.leftOf(r1, l, r) {
			r2 := t.clockwise(r, r1)
			for t.leftOf(r2, l, r) && !t.outside(r1, l, r, r2) {
				t.unjoin(r, r1)
				r1, r2 = r2, t.clockwise(r, r2)
			}
			rcand = r1
		}

		lcand := NoPoint
		if l1 := t.counterclockwise(l, r); t.leftOf(l1, l, r) {
			l2 := t.counterclockwise(l, l1)
			for t.leftOf(l2, l, r) && !t.outside(l, r, l1, l2) {
				t.unjoin(l, l1)
				l1, l2 = l2, t.counterclockwise(l, l2)
			}
			lcand = l1
		}

		switch {
		case rcand == NoPoint && lcand == NoPoint:
			fatalf("delaunay: merge stalled at edge %v - %v before reaching the upper tangent",
				t.Points[l], t.Points[r])
		case lcand == NoPoint:
			r = rcand
		case rcand == NoPoint:
			l = lcand
		case t.outside(l, r, rcand, lcand):
			r = rcand
		default:
			l = lcand
		}
	}
	t.join(upper[1], upper[0], true, false)

	return t.absorb(left, right)
}

// join adds the undirected edge a-b, optionally reseeding either first.
func (t *Triangulation) join(a, b PointID, aFirst, bFirst bool) {
	t.addNeighbor(a, b, aFirst)
	t.addNeighbor(b, a, bFirst)
	t.opts.Tracer.Join(t.Points[a], t.Points[b])
}

// unjoin removes the undirected edge a-b.
func (t *Triangulation) unjoin(a, b PointID) {
	t.removeNeighbor(a, b)
	t.removeNeighbor(b, a)
	t.opts.Tracer.Unjoin(t.Points[a], t.Points[b])
}

// cross is the orientation predicate: +1 when q lies left of o->p, -1 right,
// 0 collinear. Coordinates are rounded at ingestion, so the error-bounded
// determinant sign is exact; rounding the cross product itself would zero out
// real turns between points one grid step apart and corrupt hulls built from
// near-coincident columns.
func (t *Triangulation) cross(o, p, q PointID) int {
	return geom.Orient(t.Points[o].vec(), t.Points[p].vec(), t.Points[q].vec())
}

// leftOf reports whether q lies strictly left of the directed edge a->b.
func (t *Triangulation) leftOf(q, a, b PointID) bool {
	return t.cross(a, b, q) > 0
}

// rightOf reports whether q lies strictly right of the directed edge a->b.
func (t *Triangulation) rightOf(q, a, b PointID) bool {
	return t.cross(a, b, q) < 0
}

// outside reports whether q lies on or outside the circumcircle of a, b, c.
// A q identical to one of the triple is trivially outside; the merge loops
// rely on that sentinel to stop when a candidate scan wraps. The triple may
// arrive in either orientation, so the incircle determinant's sign is flipped
// for clockwise triples; exact cocircular quads land in the determinant's
// zero band and classify consistently as outside no matter the evaluation
// order.
func (t *Triangulation) outside(a, b, c, q PointID) bool {
	if q == a || q == b || q == c {
		t.opts.Tracer.Outside(t.Points[a], t.Points[b], t.Points[c], t.Points[q], true)
		return true
	}
	o := t.cross(a, b, c)
	if o == 0 {
		fatalf("delaunay: circumcircle test on collinear points %v, %v, %v",
			t.Points[a], t.Points[b], t.Points[c])
	}
	in := geom.InCircle(t.Points[a].vec(), t.Points[b].vec(), t.Points[c].vec(), t.Points[q].vec())
	if o < 0 {
		in = -in
	}
	out := in <= 0
	t.opts.Tracer.Outside(t.Points[a], t.Points[b], t.Points[c], t.Points[q], out)
	return out
}

// Triangles derives the deduplicated face list from the neighbor graph. An
// edge p-n closes a triangle when stepping clockwise around n from p and
// counterclockwise around p from n meet at the same third point; the strict
// orientation guard rejects the outer face. Faces are reported with their
// vertices in counterclockwise order.
func (t *Triangulation) Triangles() [][3]PointID {
	seen := make(map[[3]PointID]struct{})
	var tris [][3]PointID
	for i := range t.Points {
		p := PointID(i)
		for _, n := range t.Points[i].neighbors {
			shared := t.clockwise(n, p)
			if shared == p || shared == n {
				continue
			}
			if t.counterclockwise(p, n) != shared {
				continue
			}
			if t.cross(p, n, shared) <= 0 {
				continue
			}
			key := sortTriple(p, n, shared)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tris = append(tris, [3]PointID{p, n, shared})
		}
	}
	return tris
}

// ConvexHull returns the hull boundary in counterclockwise order, starting at
// the leftmost point. The walk is directed: from the leftmost point's first
// reference it keeps rotating counterclockwise past the edge it arrived on,
// which needs only that one first reference to be a hull successor and
// handles collinear inputs, where the walk bounces at each end of the path
// and visits every point once.
func (t *Triangulation) ConvexHull() []PointID {
	start := PointID(0)
	seen := make([]bool, len(t.Points))
	walk := []PointID{start}
	seen[start] = true
	prev, cur := start, t.Points[start].first
	for steps := 0; cur != NoPoint && cur != start && steps < 2*len(t.Points); steps++ {
		if !seen[cur] {
			seen[cur] = true
			walk = append(walk, cur)
		}
		prev, cur = cur, t.counterclockwise(cur, prev)
	}
	return walk
}

func sortTriple(a, b, c PointID) [3]PointID {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]PointID{a, b, c}
}
