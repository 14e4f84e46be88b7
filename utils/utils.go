// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and manipulating
// planar points for triangulations and Voronoi diagrams.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates a vector of random points in the unit
// square. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	for i := 0; i < cnt; i++ {
		sites[i] = r2.Point{
			X: random.Float64(),
			Y: random.Float64(),
		}
	}

	return sites
}

// GeneratePolygonPoints generates the vertices of a regular polygon with the
// given number of sides, inscribed in a circle of the given radius around
// center. The first vertex sits on the positive X axis from center.
func GeneratePolygonPoints(sides int, radius float64, center r2.Point) []r2.Point {
	sites := make([]r2.Point, sides)

	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		sites[i] = r2.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}

	return sites
}

// DedupPoints returns points with exact coordinate duplicates removed,
// keeping the first occurrence and the original order.
func DedupPoints(points []r2.Point) []r2.Point {
	seen := make(map[r2.Point]struct{}, len(points))
	out := make([]r2.Point, 0, len(points))

	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
