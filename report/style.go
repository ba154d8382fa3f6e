// SPDX-License-Identifier: MIT
// Package: hopdist/report

package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled resolves a color mode for w. "auto" enables color only when w
// is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// styles groups the lipgloss styles used by the text report.
type styles struct {
	label   lipgloss.Style
	value   lipgloss.Style
	group   lipgloss.Style
	lowest  lipgloss.Style
	highest lipgloss.Style
	muted   lipgloss.Style
}

// newStyles binds styles to a renderer for w. With color off every style is
// the zero style, which renders text unchanged.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return styles{
		label:   r.NewStyle().Bold(true),
		value:   r.NewStyle().Foreground(lipgloss.Color("42")),
		group:   r.NewStyle().Foreground(lipgloss.Color("214")),
		lowest:  r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		highest: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
