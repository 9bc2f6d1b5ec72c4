package grammar

import (
	"slices"

	"github.com/cours-de-latin/tslamyu"
)

type kind int

const (
	kindNoun kind = iota
	kindVerb
	kindAdjective
	kindAdverbial
	// kindParticle is a function word still waiting for its partner.
	kindParticle
	// kindRelLeft is a subclause followed by "a", waiting for its noun.
	kindRelLeft
	// kindRelRight is "a" followed by a subclause, waiting for its noun.
	kindRelRight
)

// item is a constituent over some span of the input.
type item struct {
	kind kind
	tree tslamyu.ParseTree
	// tok and cat describe a particle.
	tok *tslamyu.Token
	cat tslamyu.GrammarCategory
	sig string
}

func (it *item) isTree() bool {
	return it.kind <= kindAdverbial
}

func treeItem(k kind, t tslamyu.ParseTree) *item {
	return &item{kind: k, tree: t, sig: signature(t)}
}

func particleItem(tok *tslamyu.Token, c tslamyu.GrammarCategory) *item {
	return &item{kind: kindParticle, tok: tok, cat: c, sig: "P(" + tok.Value + ":" + c.String() + ")"}
}

func relItem(k kind, sub tslamyu.ParseTree) *item {
	prefix := "RL"
	if k == kindRelRight {
		prefix = "RR"
	}
	return &item{kind: k, tree: sub, sig: prefix + "(" + signature(sub) + ")"}
}

// leafItems returns one item per category the token offers.
func leafItems(tok *tslamyu.Token) []*item {
	var out []*item
	for _, c := range tok.Categories.Slice() {
		switch {
		case c == tslamyu.NounAdposition:
			out = append(out, treeItem(kindAdverbial, &tslamyu.AdverbialPhrase{Word: tok, Class: c}))
		case c.IsNoun(), c == tslamyu.SiComplement:
			out = append(out, treeItem(kindNoun, &tslamyu.NounClause{Noun: tok, Case: c}))
		case c.IsVerb():
			out = append(out, treeItem(kindVerb, &tslamyu.VerbClause{Verb: tok, Class: c}))
		case c == tslamyu.Adjective, c == tslamyu.AdjectiveLeft, c == tslamyu.AdjectiveRight:
			out = append(out, treeItem(kindAdjective, &tslamyu.AdjectivePhrase{Adjective: tok, Class: c}))
		case c == tslamyu.Adverb:
			out = append(out, treeItem(kindAdverbial, &tslamyu.AdverbialPhrase{Word: tok, Class: c}))
		default:
			out = append(out, particleItem(tok, c))
		}
	}
	return out
}

// combine returns every constituent that l immediately followed by r can
// form.
func combine(l, r *item) []*item {
	var out []*item
	add := func(it *item) {
		if it != nil {
			out = append(out, it)
		}
	}

	switch {
	case l.kind == kindAdjective && r.kind == kindNoun:
		add(attachAdjective(r, l, true))
	case l.kind == kindNoun && r.kind == kindAdjective:
		add(attachAdjective(l, r, false))
	}

	if l.kind == kindNoun && r.kind == kindNoun {
		if asNoun(l).Case == tslamyu.NounGenitive {
			add(attachPossessive(r, l, true))
		}
		if asNoun(r).Case == tslamyu.NounGenitive {
			add(attachPossessive(l, r, false))
		}
	}

	switch {
	case (l.kind == kindVerb || l.kind == kindAdverbial) && isParticle(r, tslamyu.AttributiveLeft):
		add(relItem(kindRelLeft, l.tree))
	case isParticle(l, tslamyu.AttributiveRight) && (r.kind == kindVerb || r.kind == kindAdverbial):
		add(relItem(kindRelRight, r.tree))
	case l.kind == kindRelLeft && r.kind == kindNoun:
		add(attachSubclause(r, l.tree, true))
	case l.kind == kindNoun && r.kind == kindRelRight:
		add(attachSubclause(l, r.tree, false))
	}

	if isParticle(l, tslamyu.Adposition) && r.kind == kindNoun && plainNoun(r, tslamyu.NounSubjective) {
		add(treeItem(kindAdverbial, &tslamyu.AdverbialPhrase{Word: l.tok, Class: tslamyu.Adposition, Object: asNoun(r)}))
	}
	if isParticle(l, tslamyu.Vocative) && r.kind == kindNoun && plainNoun(r, tslamyu.NounSubjective) {
		n := cloneNoun(asNoun(r))
		n.Marker = l.tok
		add(treeItem(kindNoun, n))
	}

	switch {
	case l.kind == kindVerb:
		out = append(out, absorb(asVerb(l), r, false)...)
	case r.kind == kindVerb:
		out = append(out, absorb(asVerb(r), l, true)...)
	}
	return out
}

func isParticle(it *item, c tslamyu.GrammarCategory) bool {
	return it.kind == kindParticle && it.cat == c
}

func asNoun(it *item) *tslamyu.NounClause { return it.tree.(*tslamyu.NounClause) }
func asVerb(it *item) *tslamyu.VerbClause { return it.tree.(*tslamyu.VerbClause) }

// plainNoun reports whether it is an unmarked noun of case c.
func plainNoun(it *item, c tslamyu.GrammarCategory) bool {
	n := asNoun(it)
	return n.Case == c && n.Marker == nil
}

func attachAdjective(noun, adj *item, before bool) *item {
	n := asNoun(noun)
	a := adj.tree.(*tslamyu.AdjectivePhrase)
	if n.Marker != nil || n.Case == tslamyu.SiComplement {
		return nil
	}
	want := tslamyu.AdjectiveRight
	if before {
		want = tslamyu.AdjectiveLeft
	}
	if a.Class != want {
		return nil
	}
	c := cloneNoun(n)
	if before {
		c.Adjectives = append([]*tslamyu.AdjectivePhrase{a}, c.Adjectives...)
	} else {
		c.Adjectives = append(c.Adjectives, a)
	}
	return treeItem(kindNoun, c)
}

func attachPossessive(noun, owner *item, before bool) *item {
	n, o := asNoun(noun), asNoun(owner)
	if n.Marker != nil || o.Marker != nil || n.Case == tslamyu.SiComplement {
		return nil
	}
	c := cloneNoun(n)
	if before {
		c.Possessives = append([]*tslamyu.NounClause{o}, c.Possessives...)
	} else {
		c.Possessives = append(c.Possessives, o)
	}
	return treeItem(kindNoun, c)
}

func attachSubclause(noun *item, sub tslamyu.ParseTree, before bool) *item {
	n := asNoun(noun)
	if n.Marker != nil || n.Case == tslamyu.SiComplement {
		return nil
	}
	c := cloneNoun(n)
	if before {
		c.Subclauses = append([]tslamyu.ParseTree{sub}, c.Subclauses...)
	} else {
		c.Subclauses = append(c.Subclauses, sub)
	}
	return treeItem(kindNoun, c)
}

// absorb attaches x to the clause governed by v. before is true when x
// precedes the verb in the sentence.
func absorb(v *tslamyu.VerbClause, x *item, before bool) []*item {
	var out []*item
	emit := func(c *tslamyu.VerbClause) { out = append(out, treeItem(kindVerb, c)) }

	switch x.kind {
	case kindNoun:
		n := asNoun(x)
		if n.Marker != nil {
			c := cloneVerb(v)
			c.Vocatives = insert(c.Vocatives, n, before)
			emit(c)
			return out
		}
		switch n.Case {
		case tslamyu.NounSubjective:
			emit(fill(v, tslamyu.RoleSubjective, n))
			if v.Class == tslamyu.VerbCopula {
				emit(fill(v, tslamyu.RolePredicate, n))
			}
		case tslamyu.NounAgentive:
			emit(fill(v, tslamyu.RoleAgentive, n))
		case tslamyu.NounPatientive:
			emit(fill(v, tslamyu.RolePatientive, n))
		case tslamyu.NounGenitive:
			emit(fill(v, tslamyu.RolePredicate, n))
		case tslamyu.SiComplement:
			emit(fill(v, tslamyu.RoleComplement, n))
		case tslamyu.NounDative:
			c := cloneVerb(v)
			c.Datives = insert(c.Datives, n, before)
			emit(c)
		case tslamyu.NounTopical:
			c := cloneVerb(v)
			c.Topicals = insert(c.Topicals, n, before)
			emit(c)
		}
	case kindAdjective:
		emit(fill(v, tslamyu.RolePredicate, x.tree))
	case kindAdverbial:
		c := cloneVerb(v)
		c.Adverbials = insert(c.Adverbials, x.tree.(*tslamyu.AdverbialPhrase), before)
		emit(c)
	case kindParticle:
		if x.cat == tslamyu.Negation && v.Negation == nil {
			c := cloneVerb(v)
			c.Negation = x.tok
			emit(c)
		}
	}
	return out
}

// fill puts t in the single-valued slot role, or in Surplus when the slot is
// already taken.
func fill(v *tslamyu.VerbClause, role tslamyu.Role, t tslamyu.ParseTree) *tslamyu.VerbClause {
	c := cloneVerb(v)
	taken := false
	switch role {
	case tslamyu.RoleSubjective:
		taken = c.Subjective != nil
		if !taken {
			c.Subjective = t.(*tslamyu.NounClause)
		}
	case tslamyu.RoleAgentive:
		taken = c.Agentive != nil
		if !taken {
			c.Agentive = t.(*tslamyu.NounClause)
		}
	case tslamyu.RolePatientive:
		taken = c.Patientive != nil
		if !taken {
			c.Patientive = t.(*tslamyu.NounClause)
		}
	case tslamyu.RolePredicate:
		taken = c.Predicate != nil
		if !taken {
			c.Predicate = t
		}
	case tslamyu.RoleComplement:
		taken = c.Complement != nil
		if !taken {
			c.Complement = t.(*tslamyu.NounClause)
		}
	}
	if taken {
		c.Surplus = append(c.Surplus, tslamyu.Argument{Role: role, Tree: t})
		slices.SortStableFunc(c.Surplus, func(a, b tslamyu.Argument) int {
			return a.Tree.Head().Position - b.Tree.Head().Position
		})
	}
	return c
}

func insert[T any](list []T, x T, before bool) []T {
	if before {
		return append([]T{x}, list...)
	}
	return append(list, x)
}

func cloneNoun(n *tslamyu.NounClause) *tslamyu.NounClause {
	c := *n
	c.Possessives = slices.Clone(n.Possessives)
	c.Adjectives = slices.Clone(n.Adjectives)
	c.Subclauses = slices.Clone(n.Subclauses)
	return &c
}

func cloneVerb(v *tslamyu.VerbClause) *tslamyu.VerbClause {
	c := *v
	c.Adverbials = slices.Clone(v.Adverbials)
	c.Datives = slices.Clone(v.Datives)
	c.Topicals = slices.Clone(v.Topicals)
	c.Vocatives = slices.Clone(v.Vocatives)
	c.Surplus = slices.Clone(v.Surplus)
	return &c
}
