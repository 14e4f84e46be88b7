// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/deltille/voronoi/delaunay"
	"github.com/deltille/voronoi/geom"
	"github.com/deltille/voronoi/utils"
	"github.com/golang/geo/r2"
)

// NoCell marks the outer region beyond the mirrored boundary in
// CellNeighbors.
const NoCell = -1

// Options hold the diagram configuration.
type Options struct {
	Precision int
}

// An Option configures a Diagram before it is built.
type Option func(*Options) error

// WithPrecision sets the rounding precision in decimal digits, used both for
// the underlying triangulation and for coalescing Voronoi vertices.
func WithPrecision(digits int) Option {
	return func(o *Options) error {
		if digits < 1 || digits > 15 {
			return fmt.Errorf("voronoi: precision must be in [1, 15], got %d", digits)
		}
		o.Precision = digits
		return nil
	}
}

// A Diagram is the Voronoi diagram of a planar point set. Every cell is made
// finite by triangulating the sites together with their reflections across an
// expanded bounding box, so boundary cells close against the mirror images
// instead of extending to infinity.
type Diagram struct {
	Sites    []r2.Point
	Vertices []r2.Point

	// CellVertices, CellNeighbors and CellOffsets describe all cells in
	// compressed form: cell i owns the half-open range
	// [CellOffsets[i], CellOffsets[i+1]). Vertices are sorted
	// counterclockwise around the site; neighbor j is the cell across the
	// Voronoi edge between vertex j and vertex j+1, or NoCell when that
	// edge borders the mirrored outside.
	CellVertices  []int
	CellNeighbors []int
	CellOffsets   []int

	opts Options
}

// NumCells returns the number of cells, one per site.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the cell of site i.
// It returns an error if the index is out of range.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(d.Sites) {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(d.Sites))
	}
	return Cell{idx: i, d: d}, nil
}

// NewDiagram computes the Voronoi diagram of the given sites. Coordinates are
// rounded to the configured precision and exact duplicates are dropped before
// the diagram is built; at least one distinct site is required.
func NewDiagram(sites []r2.Point, setters ...Option) (*Diagram, error) {
	opts := Options{Precision: delaunay.DefaultPrecision}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	rounded := make([]r2.Point, len(sites))
	for i, s := range sites {
		rounded[i] = r2.Point{
			X: geom.RoundTo(s.X, opts.Precision),
			Y: geom.RoundTo(s.Y, opts.Precision),
		}
	}
	own := utils.DedupPoints(rounded)
	if len(own) == 0 {
		return nil, errors.New("voronoi: at least one site required")
	}

	tr, err := delaunay.New(mirrorSites(own), delaunay.WithPrecision(opts.Precision))
	if err != nil {
		return nil, err
	}

	d := &Diagram{
		Sites:       own,
		CellOffsets: make([]int, len(own)+1),
		opts:        opts,
	}

	// Arena ids of the original sites and, per arena point, its cell
	// index. Mirror images map to NoCell.
	siteArena := make([]delaunay.PointID, len(own))
	cellOf := make([]int, tr.Len())
	for id := range tr.Points {
		in := tr.Points[id].Index
		if in < len(own) {
			siteArena[in] = delaunay.PointID(id)
			cellOf[id] = in
		} else {
			cellOf[id] = NoCell
		}
	}

	step := math.Pow(10, -float64(opts.Precision))
	vertexIdx := make(map[r2.Point]int)
	for ci := range own {
		d.CellOffsets[ci] = len(d.CellVertices)

		p := siteArena[ci]
		ring := tr.Neighbors(p)
		entries := make([]cellEntry, 0, len(ring))
		for i := range ring {
			a, b := ring[i], ring[(i+1)%len(ring)]
			center, ok := geom.Circumcenter(pointVec(tr, p), pointVec(tr, a), pointVec(tr, b))
			if !ok {
				// A ring pair collinear with its site wraps the outside of a
				// boundary point instead of closing a triangle; there is no
				// corner to emit.
				continue
			}
			key := r2.Point{
				X: geom.RoundTo(center.X, opts.Precision),
				Y: geom.RoundTo(center.Y, opts.Precision),
			}
			vi, seen := vertexIdx[key]
			if !seen {
				vi = len(d.Vertices)
				d.Vertices = append(d.Vertices, key)
				vertexIdx[key] = vi
			}
			entries = append(entries, cellEntry{vertex: vi, neighbor: cellOf[b]})
		}
		for _, e := range coalesceCorners(entries, d.Vertices, step) {
			d.CellVertices = append(d.CellVertices, e.vertex)
			d.CellNeighbors = append(d.CellNeighbors, e.neighbor)
		}
	}
	d.CellOffsets[len(own)] = len(d.CellVertices)

	return d, nil
}

// Relax runs the given number of Lloyd iterations: each step rebuilds the
// diagram with every site moved to the centroid of its cell. Sites whose
// centroids coincide after rounding merge, so the relaxed diagram may have
// fewer cells than the original.
func (d *Diagram) Relax(steps int) (*Diagram, error) {
	cur := d
	for step := 0; step < steps; step++ {
		sites := make([]r2.Point, cur.NumCells())
		for i := range sites {
			c, err := cur.Cell(i)
			if err != nil {
				return nil, err
			}
			poly := make([]r2.Point, 0, c.NumVertices())
			for _, vi := range c.VertexIndices() {
				poly = append(poly, cur.Vertices[vi])
			}
			sites[i] = geom.Centroid(poly)
		}
		next, err := NewDiagram(sites, WithPrecision(cur.opts.Precision))
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// A cellEntry pairs one cell corner with the cell across the edge leaving it.
type cellEntry struct {
	vertex   int
	neighbor int
}

// coalesceCorners drops cell corners that landed on or within one grid step of
// the following corner after rounding. Adjacent triangles of a near-cocircular
// quad have circumcenters closer than the rounding grid resolves; keeping both
// corners would leave a zero-length or clockwise sliver edge in the cell.
// Dropping entry j removes the degenerate edge together with its neighbor,
// while the surviving corner keeps the real edge that leaves it. A removal can
// bring two more such corners together, so the pass repeats until stable. The
// tolerance is half a step slack so that corners exactly one grid step apart
// still match despite the subtraction's own rounding.
func coalesceCorners(entries []cellEntry, vertices []r2.Point, step float64) []cellEntry {
	near := func(u, v r2.Point) bool {
		return math.Abs(u.X-v.X) <= 1.5*step && math.Abs(u.Y-v.Y) <= 1.5*step
	}
	for len(entries) > 0 {
		kept := make([]cellEntry, 0, len(entries))
		for j, e := range entries {
			next := entries[(j+1)%len(entries)].vertex
			if e.vertex == next || near(vertices[e.vertex], vertices[next]) {
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == len(entries) {
			break
		}
		entries = kept
	}
	return entries
}

// mirrorSites appends to the sites their reflections across the four sides of
// the bounding box expanded by a tenth of its larger span. Reflecting across
// the expanded box keeps every image strictly outside it, so the original
// sites end up interior to the extended triangulation and their cells close.
func mirrorSites(own []r2.Point) []delaunay.Site {
	min, max := own[0], own[0]
	for _, p := range own[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	span := math.Max(max.X-min.X, max.Y-min.Y)
	if span == 0 {
		span = 1
	}
	margin := span / 10
	min = min.Sub(r2.Point{X: margin, Y: margin})
	max = max.Add(r2.Point{X: margin, Y: margin})

	sites := make([]delaunay.Site, 0, 5*len(own))
	for _, p := range own {
		sites = append(sites, delaunay.Site{X: p.X, Y: p.Y})
	}
	for _, p := range own {
		sites = append(sites,
			delaunay.Site{X: 2*min.X - p.X, Y: p.Y},
			delaunay.Site{X: 2*max.X - p.X, Y: p.Y},
			delaunay.Site{X: p.X, Y: 2*min.Y - p.Y},
			delaunay.Site{X: p.X, Y: 2*max.Y - p.Y},
		)
	}
	return sites
}

func pointVec(tr *delaunay.Triangulation, p delaunay.PointID) r2.Point {
	pt := tr.Points[p]
	return r2.Point{X: pt.X, Y: pt.Y}
}
