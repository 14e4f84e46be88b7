// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "github.com/pkg/errors"

// Adjacency and merge invariants are checked deep inside recursive calls.
// Threading errors through every mutation would bury the algorithm, so
// violations panic with a marker type and the public entry point recovers,
// converting the panic into an error for the caller.

type invariantError struct {
	err error
}

func fatalf(format string, args ...any) {
	panic(invariantError{err: errors.Errorf(format, args...)})
}

// recoverInvariant converts an invariantError panic into an error and
// re-panics on anything else.
func recoverInvariant(r any) error {
	if r == nil {
		return nil
	}
	if ie, ok := r.(invariantError); ok {
		return ie.err
	}
	panic(r)
}
