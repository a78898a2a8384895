// SPDX-License-Identifier: MIT
//
// File: floydwarshall.go
// Role: Dense all-pairs build (Floyd–Warshall) with last-edge tracking.
// Determinism:
//   - Direct edges are seeded in id order; loop order is fixed (k → i → j)
//     and only strict improvements are taken.
// Contract:
//   - Diagonal starts at 0 and is never improved (weights are non-negative).

package router

import (
	"context"
	"fmt"
	"math"
)

// buildFloydWarshall fills the table with the k → i → j dynamic programme.
// Time O(V³ + E), no extra space beyond the table.
func (r *Router) buildFloydWarshall(ctx context.Context) error {
	n := len(r.table)
	for i := range r.table {
		row := make([]routeData, n)
		for j := range row {
			row[j] = routeData{weight: math.Inf(1), prevEdge: noEdge}
		}
		row[i] = routeData{weight: 0, prevEdge: noEdge, reached: true}
		r.table[i] = row
	}

	// Seed with the cheapest direct edge per ordered pair; ties keep the lower id.
	for id, e := range r.edges {
		cell := &r.table[e.From][e.To]
		if e.Weight < cell.weight {
			*cell = routeData{weight: e.Weight, prevEdge: id, reached: true}
		}
	}

	var (
		k, i, j int
		ik, kj  float64
		cand    float64
	)
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("router: build aborted at intermediate vertex %d: %w", k, err)
		}
		rowK := r.table[k]
		for i = 0; i < n; i++ {
			rowI := r.table[i]
			ik = rowI[k].weight
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			for j = 0; j < n; j++ {
				kj = rowK[j].weight
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < rowI[j].weight {
					// the last edge of k → j is the last edge of i → k → j
					rowI[j] = routeData{weight: cand, prevEdge: rowK[j].prevEdge, reached: true}
				}
			}
		}
	}

	return nil
}
