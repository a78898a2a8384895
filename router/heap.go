// SPDX-License-Identifier: MIT

package router

import "github.com/katalvlaran/transcat/core"

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   core.VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by vertex id.
// Improvements are pushed as new entries; outdated ones are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
