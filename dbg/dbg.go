// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package dbg turns opaque identifiers into readable random names for trace
// output. Hull ids and similar counters are much easier to follow across a
// merge log as "WiseHeron" than as bare integers. Names are memoized per key
// and nondeterministic between runs, so the same name never implies the same
// entity across two traces.
package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = map[any]string{}
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for key.
func Name(key any) string {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
