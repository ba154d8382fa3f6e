// Package groups maps vertex IDs to group labels and enumerates groups and
// their members in ascending numeric order.
//
// An Index is built once from a stream of (node, group) records and then read.
// Each node belongs to at most one group: a later record for the same node
// replaces the earlier one, and a group left without members disappears.
//
// Ordering:
//
//	Groups() and Members() are backed by red-black trees (gods treemap and
//	treeset), so both are returned in ascending order without a sort pass.
//	Downstream aggregation iterates groups in this order, which makes tie
//	breaking between groups reproducible.
//
// Concurrency:
//
//	Mutations (Set) are not synchronized. Concurrent readers are safe once
//	building has finished.
package groups
