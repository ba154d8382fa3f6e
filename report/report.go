// SPDX-License-Identifier: MIT
// Package: hopdist/report
//
// report.go - Summary shape plus text and JSON writers.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
	"github.com/katalvlaran/hopdist/dfs"
	"github.com/katalvlaran/hopdist/stats"
)

// Summary collects whatever a command computed. Nil sections are omitted.
type Summary struct {
	RunID        string                 `json:"run_id,omitempty"`
	Graph        *core.GraphStats       `json:"graph,omitempty"`
	Connectivity *dfs.ConnectivityStats `json:"connectivity,omitempty"`
	Global       *stats.GlobalResult    `json:"global,omitempty"`
	Groups       *stats.GroupReport     `json:"groups,omitempty"`
}

// TextOptions controls WriteText and WriteDistances.
type TextOptions struct {
	Color bool
}

// FormatAverage prints f with the shortest round-trip decimal form.
func FormatAverage(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// lineWriter keeps the first write error and turns later writes into no-ops.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// WriteText writes the human-readable report.
func WriteText(w io.Writer, s Summary, opts TextOptions) error {
	st := newStyles(w, opts.Color)
	lw := &lineWriter{w: w}

	if s.Graph != nil {
		lw.printf("%s %s\n", st.label.Render("Vertices:"), st.value.Render(strconv.Itoa(s.Graph.VertexCount)))
		lw.printf("%s %s\n", st.label.Render("Edges:"), st.value.Render(strconv.Itoa(s.Graph.EdgeCount)))
		lw.printf("%s %s\n", st.label.Render("Self-loops:"), st.value.Render(strconv.Itoa(s.Graph.SelfLoops)))
		lw.printf("%s %s\n", st.label.Render("Isolated vertices:"), st.value.Render(strconv.Itoa(s.Graph.Isolated)))
		lw.printf("%s %s\n", st.label.Render("Max degree:"), st.value.Render(strconv.Itoa(s.Graph.MaxDegree)))
	}

	if c := s.Connectivity; c != nil {
		lw.printf("%s %s\n", st.label.Render("Connected components:"), st.value.Render(strconv.Itoa(c.Components)))
		lw.printf("%s %s\n", st.label.Render("Largest component:"), st.value.Render(strconv.Itoa(c.Largest)))
		lw.printf("%s %s\n", st.label.Render("Reachable ordered pairs:"), st.value.Render(strconv.FormatInt(c.ReachablePairs, 10)))
	}

	if s.Global != nil {
		lw.printf("%s %s\n",
			st.label.Render("Average distance between all pairs of vertices:"),
			st.value.Render(FormatAverage(s.Global.Average)))
	}

	if s.Groups != nil {
		for _, g := range s.Groups.Groups {
			lw.printf("%s %s: %s\n",
				st.label.Render("Average distance between vertices in group"),
				st.group.Render(strconv.Itoa(g.Group)),
				st.value.Render(FormatAverage(g.Average)))
		}
		if lo := s.Groups.Lowest; lo.Found {
			lw.printf("%s %s (group %s)\n",
				st.label.Render("Lowest average distance between vertices:"),
				st.lowest.Render(FormatAverage(lo.Average)),
				st.group.Render(strconv.Itoa(lo.Group)))
		}
		if hi := s.Groups.Highest; hi.Found {
			lw.printf("%s %s (group %s)\n",
				st.label.Render("Highest average distance between vertices:"),
				st.highest.Render(FormatAverage(hi.Average)),
				st.group.Render(strconv.Itoa(hi.Group)))
		}
	}

	return lw.err
}

// WriteDistances lists one "<vertex> <distance>" line per reached vertex in
// BFS order, framed by a header and a reach count.
func WriteDistances(w io.Writer, res *bfs.Result, opts TextOptions) error {
	if res == nil {
		return nil
	}
	st := newStyles(w, opts.Color)
	lw := &lineWriter{w: w}

	lw.printf("%s %s\n", st.label.Render("Distances from vertex"), st.group.Render(strconv.Itoa(res.Start)))
	for _, id := range res.Order {
		lw.printf("%d %s\n", id, st.value.Render(strconv.Itoa(res.Dist[id])))
	}
	lw.printf("%s\n", st.muted.Render(fmt.Sprintf("reached %d vertices", len(res.Order))))

	return lw.err
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}
