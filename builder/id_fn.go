// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import "fmt"

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function returning a non-negative ID:
// given the same idx, it always returns the same ID.
type IDFn func(idx int) int

// DefaultIDFn returns idx unchanged, e.g. 0→0, 42→42.
func DefaultIDFn(idx int) int {
	return idx
}

// OffsetIDFn returns an IDFn mapping idx to base+idx.
// Useful for placing several fixtures side by side without ID collisions.
// Panics if base < 0.
func OffsetIDFn(base int) IDFn {
	if base < 0 {
		panic(fmt.Sprintf("OffsetIDFn: base must be ≥ 0, got %d", base))
	}
	return func(idx int) int { return base + idx }
}

// StrideIDFn returns an IDFn mapping idx to idx*stride, producing sparse IDs
// (0, stride, 2·stride, ...). Panics if stride < 1.
func StrideIDFn(stride int) IDFn {
	if stride < 1 {
		panic(fmt.Sprintf("StrideIDFn: stride must be ≥ 1, got %d", stride))
	}
	return func(idx int) int { return idx * stride }
}
