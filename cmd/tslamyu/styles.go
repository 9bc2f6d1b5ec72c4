package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/cours-de-latin/tslamyu"
)

// styles renders the parts of the terminal output.
type styles struct {
	heading func(string) string
	label   func(string) string
	role    func(string) string
	err     func(string) string
}

func plain(s string) string { return s }

func newStyles(w io.Writer, noColor bool) styles {
	if noColor {
		return styles{heading: plain, label: plain, role: plain, err: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: render(r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))),
		label:   render(r.NewStyle().Bold(true)),
		role:    render(r.NewStyle().Foreground(lipgloss.Color("3"))),
		err:     render(r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))),
	}
}

func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

func (s styles) tree() tslamyu.Style {
	return tslamyu.Style{Role: s.role, Label: s.label}
}
