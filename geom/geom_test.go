// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		digits int
		want   float64
	}{
		{"exact", 1.5, 3, 1.5},
		{"truncates", 1.23456789, 4, 1.2346},
		{"negative value", -0.0000015, 6, -0.000002},
		{"zero digits", 2.71, 0, 3},
		{"tiny to zero", 1e-9, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundTo(tt.v, tt.digits); got != tt.want {
				t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.v, tt.digits, got, tt.want)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	// Unit circle through (1,0), (0,1), (-1,0), counterclockwise.
	a := r2.Point{X: 1, Y: 0}
	b := r2.Point{X: 0, Y: 1}
	c := r2.Point{X: -1, Y: 0}
	tests := []struct {
		name string
		q    r2.Point
		want int
	}{
		{"center", r2.Point{X: 0, Y: 0}, 1},
		{"near edge inside", r2.Point{X: 0.9, Y: 0}, 1},
		{"far outside", r2.Point{X: 5, Y: 5}, -1},
		{"near edge outside", r2.Point{X: 1.1, Y: 0}, -1},
		{"on circle", r2.Point{X: 0, Y: -1}, 0},
		{"vertex", r2.Point{X: 1, Y: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircle(a, b, c, tt.q); got != tt.want {
				t.Errorf("InCircle(a, b, c, %v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestInCircle_Sliver(t *testing.T) {
	// A nearly collinear triple spans a huge circumcircle; a distance-based
	// test loses the classification to cancellation, the determinant keeps it.
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 2000, Y: 0}
	c := r2.Point{X: 1000, Y: 0.1}
	inside := r2.Point{X: 1000, Y: 0.05}
	outside := r2.Point{X: 1000, Y: 0.2}
	if got := InCircle(a, b, c, inside); got != 1 {
		t.Errorf("InCircle(sliver, inside) = %v, want 1", got)
	}
	if got := InCircle(a, b, c, outside); got != -1 {
		t.Errorf("InCircle(sliver, outside) = %v, want -1", got)
	}
}

func TestCross(t *testing.T) {
	o := r2.Point{X: 0, Y: 0}
	p := r2.Point{X: 1, Y: 0}
	tests := []struct {
		name string
		q    r2.Point
		want float64
	}{
		{"left", r2.Point{X: 0, Y: 1}, 1},
		{"right", r2.Point{X: 0, Y: -1}, -1},
		{"collinear ahead", r2.Point{X: 5, Y: 0}, 0},
		{"collinear behind", r2.Point{X: -3, Y: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cross(o, p, tt.q); got != tt.want {
				t.Errorf("Cross(%v, %v, %v) = %v, want %v", o, p, tt.q, got, tt.want)
			}
		})
	}
}

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		o, p, q r2.Point
		want    int
	}{
		{"left turn",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, 1},
		{"right turn",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: -1}, -1},
		{"collinear ahead",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 5, Y: 0}, 0},
		{"diagonal noise collinear",
			r2.Point{X: 0.1, Y: 0.1}, r2.Point{X: 0.2, Y: 0.2}, r2.Point{X: 0.3, Y: 0.3}, 0},
		{"vertical exact collinear",
			r2.Point{X: 0.636739, Y: -0.081874}, r2.Point{X: 0.636739, Y: -0.081873},
			r2.Point{X: 0.636739, Y: 0.5}, 0},
		// One rounding step of sideways motion over half a unit of rise:
		// the cross product is 3e-7, far below the coordinate grid but a
		// real turn that must keep its sign.
		{"thin left turn",
			r2.Point{X: 0.321509, Y: 1.511595}, r2.Point{X: 0.32151, Y: 0.945662},
			r2.Point{X: 0.32151, Y: 1.250454}, 1},
		{"thin right turn",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 0, Y: 1.562562},
			r2.Point{X: 1e-6, Y: 2.128495}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient(tt.o, tt.p, tt.q); got != tt.want {
				t.Errorf("Orient(%v, %v, %v) = %v, want %v", tt.o, tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestPerpendicularBisector(t *testing.T) {
	a := r2.Point{X: -1, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	l := PerpendicularBisector(a, b)

	if l.Origin != (r2.Point{X: 0, Y: 0}) {
		t.Errorf("PerpendicularBisector(%v, %v).Origin = %v, want %v", a, b, l.Origin, r2.Point{})
	}
	if got := l.Dir.Dot(b.Sub(a)); got != 0 {
		t.Errorf("PerpendicularBisector(%v, %v).Dir not perpendicular: dot = %v, want 0", a, b, got)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 Line
		want   r2.Point
		wantOK bool
	}{
		{
			"axes",
			Line{Origin: r2.Point{X: 0, Y: -5}, Dir: r2.Point{X: 0, Y: 1}},
			Line{Origin: r2.Point{X: -5, Y: 0}, Dir: r2.Point{X: 1, Y: 0}},
			r2.Point{X: 0, Y: 0},
			true,
		},
		{
			"diagonals",
			Line{Origin: r2.Point{X: 0, Y: 0}, Dir: r2.Point{X: 1, Y: 1}},
			Line{Origin: r2.Point{X: 2, Y: 0}, Dir: r2.Point{X: -1, Y: 1}},
			r2.Point{X: 1, Y: 1},
			true,
		},
		{
			"parallel",
			Line{Origin: r2.Point{X: 0, Y: 0}, Dir: r2.Point{X: 1, Y: 0}},
			Line{Origin: r2.Point{X: 0, Y: 1}, Dir: r2.Point{X: 2, Y: 0}},
			r2.Point{},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.l1, tt.l2)
			if ok != tt.wantOK {
				t.Fatalf("Intersect(...) ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Intersect(...) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircumcircle(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    r2.Point
		wantCenter r2.Point
		wantR2     float64
		wantOK     bool
	}{
		{
			"right isoceles",
			r2.Point{X: -1, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1},
			r2.Point{X: 0, Y: 0}, 1, true,
		},
		{
			"unit square corners",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0}, r2.Point{X: 0, Y: 2},
			r2.Point{X: 1, Y: 1}, 2, true,
		},
		{
			"collinear",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2},
			r2.Point{}, 0, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center, r2sq, ok := Circumcircle(tt.a, tt.b, tt.c)
			if ok != tt.wantOK {
				t.Fatalf("Circumcircle(...) ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(center.X-tt.wantCenter.X) > 1e-12 || math.Abs(center.Y-tt.wantCenter.Y) > 1e-12 {
				t.Errorf("Circumcircle(...) center = %v, want %v", center, tt.wantCenter)
			}
			if math.Abs(r2sq-tt.wantR2) > 1e-12 {
				t.Errorf("Circumcircle(...) radius2 = %v, want %v", r2sq, tt.wantR2)
			}
		})
	}
}

func TestCircumcircle_Equidistant(t *testing.T) {
	a := r2.Point{X: 0.3, Y: -1.2}
	b := r2.Point{X: 2.5, Y: 0.7}
	c := r2.Point{X: -0.9, Y: 1.4}
	center, r2sq, ok := Circumcircle(a, b, c)
	if !ok {
		t.Fatalf("Circumcircle(...) ok = false, want true")
	}
	for _, p := range []r2.Point{a, b, c} {
		if d := Dist2(center, p); math.Abs(d-r2sq) > 1e-9 {
			t.Errorf("Dist2(center, %v) = %v, want %v", p, d, r2sq)
		}
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name    string
		polygon []r2.Point
		want    r2.Point
	}{
		{
			"unit square",
			[]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			r2.Point{X: 0.5, Y: 0.5},
		},
		{
			"clockwise square",
			[]r2.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}},
			r2.Point{X: 1, Y: 1},
		},
		{
			"right triangle",
			[]r2.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}},
			r2.Point{X: 1, Y: 1},
		},
		{
			"degenerate segment",
			[]r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}},
			r2.Point{X: 1, Y: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Centroid(tt.polygon)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Centroid(%v) = %v, want %v", tt.polygon, got, tt.want)
			}
		})
	}
}
