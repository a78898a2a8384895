// SPDX-License-Identifier: MIT

// Package transport turns a loaded catalogue into a time-weighted graph and
// answers "fastest way from stop X to stop Y" queries.
//
// Graph construction (Router.Build):
//
//   - One vertex per stop, numbered in stop-table order (IndexMapper).
//   - For every bus with at least two route entries and every pair i < j of
//     route positions, one edge route[i] → route[j]. Its weight in minutes is
//     the bus wait time plus the travel time of every hop in between, where a
//     hop of d meters takes d / 1000 / velocity × 60 minutes.
//   - A route of N entries yields N·(N-1)/2 edges. Every edge carries a
//     RoutingItemInfo, so a shortest path translates directly into
//     "wait, then ride bus B for K stops" legs.
//   - On a non-roundtrip bus, a ride that continues through the turnaround
//     stop pays one more wait per pass (a forced stand at the terminus).
//     Boarding at the terminus itself pays only the ordinary wait.
//
// State machine:
//
//	Unbuilt ──Build──▶ Built
//
// Settings may only change while unbuilt. Build runs once; rebuilding means
// constructing a new Router. Queries before Build fail with ErrInvalidState.
//
// Query results, including ErrNoRoute, are memoized in an LRU cache keyed by
// the stop-name pair (see WithCacheSize). Returned itineraries are shared with
// the cache and must be treated as read-only.
package transport
