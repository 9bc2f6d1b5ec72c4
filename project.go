package tslamyu

import (
	"iter"
	"strings"
)

// SyntaxTreeView is a display-ready copy of a parse tree.
type SyntaxTreeView struct {
	Label    string           `json:"word"`
	Gloss    string           `json:"translation,omitempty"`
	Role     string           `json:"role,omitempty"`
	Children []SyntaxTreeView `json:"children,omitempty"`
}

// Project builds the view of a parse result.
func Project(r ParseResult) SyntaxTreeView {
	return project(r.Tree, RoleNone)
}

func project(t ParseTree, role Role) SyntaxTreeView {
	v := leafView(t.Head(), t.Category(), role)
	for _, arg := range t.Arguments() {
		v.Children = append(v.Children, project(arg.Tree, arg.Role))
	}
	if vc, ok := t.(*VerbClause); ok && vc.Negation != nil {
		v.Children = append(v.Children, leafView(vc.Negation, Negation, RoleNegation))
	}
	if nc, ok := t.(*NounClause); ok && nc.Marker != nil {
		v.Children = append(v.Children, leafView(nc.Marker, Vocative, RoleVocative))
	}
	return v
}

func leafView(tok *Token, c GrammarCategory, role Role) SyntaxTreeView {
	v := SyntaxTreeView{Label: tok.Value, Role: role.String()}
	if a, ok := tok.AnalysisFor(c); ok {
		v.Gloss = ShortestGloss(a)
	}
	return v
}

// Style decorates the parts of a rendered tree line. Nil fields leave the
// text as is.
type Style struct {
	Role  func(string) string
	Label func(string) string
}

func (s Style) role(r string) string {
	if s.Role == nil {
		return r
	}
	return s.Role(r)
}

func (s Style) label(l string) string {
	if s.Label == nil {
		return l
	}
	return s.Label(l)
}

// RenderTree yields the lines of an indented drawing of v. Each child hangs
// under the end of its parent's role label.
func RenderTree(v SyntaxTreeView, style Style) iter.Seq[string] {
	return func(yield func(string) bool) {
		renderTree(v, "", "", style, yield)
	}
}

func renderTree(v SyntaxTreeView, first, rest string, style Style, yield func(string) bool) bool {
	var b strings.Builder
	b.WriteString(first)
	if v.Role != "" {
		b.WriteString(style.role(v.Role + ": "))
	}
	b.WriteString(style.label(v.Label))
	if v.Gloss != "" {
		b.WriteString(" -> ")
		b.WriteString(v.Gloss)
	}
	if !yield(b.String()) {
		return false
	}
	indent := 1
	if v.Role != "" {
		indent = len([]rune(v.Role)) + 3
	}
	pad := rest + strings.Repeat(" ", indent)
	for i, c := range v.Children {
		branch, cont := "├─ ", "│  "
		if i == len(v.Children)-1 {
			branch, cont = "└─ ", "   "
		}
		if !renderTree(c, pad+branch, pad+cont, style, yield) {
			return false
		}
	}
	return true
}
