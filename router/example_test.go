// SPDX-License-Identifier: MIT

package router_test

import (
	"fmt"

	"github.com/katalvlaran/transcat/core"
	"github.com/katalvlaran/transcat/router"
)

// ExampleRouter_BuildRoute finds the cheaper of two ways between stops 0 and 2.
func ExampleRouter_BuildRoute() {
	g := core.NewDirectedWeightedGraph(3)
	g.AddEdge(core.Edge{From: 0, To: 2, Weight: 12}) // direct ride
	g.AddEdge(core.Edge{From: 0, To: 1, Weight: 4})
	g.AddEdge(core.Edge{From: 1, To: 2, Weight: 5})

	r, err := router.New(g)
	if err != nil {
		fmt.Println(err)
		return
	}

	info, ok := r.BuildRoute(0, 2)
	fmt.Println(ok, info.Weight, info.Edges)

	_, ok = r.BuildRoute(2, 0)
	fmt.Println(ok)

	// Output:
	// true 9 [1 2]
	// false
}
