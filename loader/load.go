// SPDX-License-Identifier: MIT
// Package: hopdist/loader

package loader

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hopdist/core"
	"github.com/katalvlaran/hopdist/groups"
)

// Counts reports how many lines a load accepted and skipped.
type Counts struct {
	Records int `json:"records"`
	Skipped int `json:"skipped"`
}

// ReadGraph builds a frozen graph from an edge list on r.
func ReadGraph(r io.Reader) (*core.Graph, Counts, error) {
	pr := NewPairReader(r)
	g, err := core.Build(pr.All())
	c := Counts{Records: pr.Records(), Skipped: pr.Skipped()}
	if err != nil {
		return nil, c, err
	}
	if err = pr.Err(); err != nil {
		return nil, c, err
	}
	return g, c, nil
}

// ReadGroups builds a group index from (node, group) records on r.
// A later record for the same node replaces the earlier one.
func ReadGroups(r io.Reader) (*groups.Index, Counts, error) {
	pr := NewPairReader(r)
	idx := groups.FromPairs(pr.All())
	c := Counts{Records: pr.Records(), Skipped: pr.Skipped()}
	if err := pr.Err(); err != nil {
		return nil, c, err
	}
	return idx, c, nil
}

// LoadGraph opens path and reads an edge list from it.
func LoadGraph(path string) (*core.Graph, Counts, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Counts{}, err
	}
	defer rc.Close()

	g, c, err := ReadGraph(rc)
	if err != nil {
		return nil, c, fmt.Errorf("loader: %s: %w", path, err)
	}
	return g, c, nil
}

// LoadGroups opens path and reads a label list from it.
func LoadGroups(path string) (*groups.Index, Counts, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Counts{}, err
	}
	defer rc.Close()

	idx, c, err := ReadGroups(rc)
	if err != nil {
		return nil, c, fmt.Errorf("loader: %s: %w", path, err)
	}
	return idx, c, nil
}
