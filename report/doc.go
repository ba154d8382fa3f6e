// Package report renders aggregation results for people (WriteText) and for
// programs (WriteJSON).
//
// The text layout is line oriented and stable:
//
//	Average distance between all pairs of vertices: 1.5
//	Average distance between vertices in group 1: 1.5
//	Lowest average distance between vertices: 1.5 (group 1)
//	Highest average distance between vertices: 1.5 (group 1)
//
// Averages are printed with the shortest decimal representation that
// round-trips. Styling is applied only when color is enabled, and it never
// changes the visible text.
package report
