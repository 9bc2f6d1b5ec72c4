package grammar

import (
	"strconv"
	"strings"

	"github.com/cours-de-latin/tslamyu"
)

// signature renders the structure of t. Two trees share a signature exactly
// when they assign the same roles to the same tokens, whatever order the
// chart built them in.
func signature(t tslamyu.ParseTree) string {
	var b strings.Builder
	writeSignature(&b, t)
	return b.String()
}

func writeSignature(b *strings.Builder, t tslamyu.ParseTree) {
	b.WriteString(tokenKey(t.Head()))
	b.WriteByte(':')
	b.WriteString(t.Category().String())
	if n, ok := t.(*tslamyu.NounClause); ok && n.Marker != nil {
		b.WriteString("+" + tokenKey(n.Marker))
	}
	if v, ok := t.(*tslamyu.VerbClause); ok && v.Negation != nil {
		b.WriteString("-" + tokenKey(v.Negation))
	}
	args := t.Arguments()
	if len(args) == 0 {
		return
	}
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.Role.String())
		b.WriteByte('=')
		writeSignature(b, a.Tree)
	}
	b.WriteByte(')')
}

func tokenKey(t *tslamyu.Token) string {
	return t.Value + "@" + strconv.Itoa(t.Position)
}
