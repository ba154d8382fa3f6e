// Package loader reads whitespace-separated integer pair files (edge lists
// and node→group label lists) and turns them into a frozen core.Graph or a
// groups.Index.
//
// Record rule: each line is split on whitespace, tokens that are not
// non-negative decimal integers are dropped, and the line is accepted only if
// exactly two tokens remain. Anything else (comments, headers, blank lines,
// three-column rows) is skipped and counted, never reported as an error.
//
// Files whose name ends in ".gz" are decompressed transparently.
package loader
