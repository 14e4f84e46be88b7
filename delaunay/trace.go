// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"io"

	"github.com/deltille/voronoi/dbg"
)

// A Tracer observes the engine at its key mutation points. All callbacks run
// synchronously on the triangulating goroutine; a Tracer must not call back
// into the Triangulation. The zero-value engine uses a no-op tracer, so
// tracing costs nothing unless opted into via WithTracer.
type Tracer interface {
	// Join is called after the edge a-b is added.
	Join(a, b Point)
	// Unjoin is called after the edge a-b is removed.
	Unjoin(a, b Point)
	// Outside is called after every circumcircle test of q against the
	// circle through a, b, c.
	Outside(a, b, c, q Point, outside bool)
}

type nopTracer struct{}

func (nopTracer) Join(_, _ Point)                  {}
func (nopTracer) Unjoin(_, _ Point)                {}
func (nopTracer) Outside(_, _, _, _ Point, _ bool) {}

// A WriterTracer logs every engine event to an io.Writer, labeling points
// with the readable name of their current hull. Useful for reconstructing a
// merge step by step when debugging or driving a visualization.
type WriterTracer struct {
	W io.Writer
}

func (tr WriterTracer) Join(a, b Point) {
	fmt.Fprintf(tr.W, "join   %v[%s] - %v[%s]\n", a, dbg.Name(a.hull), b, dbg.Name(b.hull))
}

func (tr WriterTracer) Unjoin(a, b Point) {
	fmt.Fprintf(tr.W, "unjoin %v[%s] - %v[%s]\n", a, dbg.Name(a.hull), b, dbg.Name(b.hull))
}

func (tr WriterTracer) Outside(a, b, c, q Point, outside bool) {
	fmt.Fprintf(tr.W, "outside(%v, %v, %v; %v) = %v\n", a, b, c, q, outside)
}
