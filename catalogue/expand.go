// SPDX-License-Identifier: MIT

package catalogue

import "slices"

// ExpandRoute turns a declared stop list into the route as traversed.
// Roundtrip routes are returned unchanged (as a copy); a non-roundtrip
// A B C becomes A B C B A.
func ExpandRoute(names []string, isRoundtrip bool) []string {
	if isRoundtrip || len(names) < 2 {
		return slices.Clone(names)
	}
	out := make([]string, 0, 2*len(names)-1)
	out = append(out, names...)
	for i := len(names) - 2; i >= 0; i-- {
		out = append(out, names[i])
	}

	return out
}
