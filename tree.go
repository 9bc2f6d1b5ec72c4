package tslamyu

import "fmt"

// Role is the function a constituent fills inside its parent.
type Role int

const (
	RoleNone Role = iota
	RoleSubjective
	RoleAgentive
	RolePatientive
	RolePredicate
	RoleComplement
	RoleAdverbial
	RoleDative
	RoleTopical
	RoleVocative
	RoleNegation
	RolePossessive
	RoleAdjective
	RoleSubclause
	RoleObject
)

var roleNames = map[Role]string{
	RoleNone:       "",
	RoleSubjective: "subjective",
	RoleAgentive:   "agentive",
	RolePatientive: "patientive",
	RolePredicate:  "predicate",
	RoleComplement: "complement",
	RoleAdverbial:  "adverbial",
	RoleDative:     "dative",
	RoleTopical:    "topical",
	RoleVocative:   "vocative",
	RoleNegation:   "negation",
	RolePossessive: "possessive",
	RoleAdjective:  "adjective",
	RoleSubclause:  "subclause",
	RoleObject:     "object",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseTree is one node of a derivation. The set of implementations is
// closed: *VerbClause, *NounClause, *AdjectivePhrase and *AdverbialPhrase.
type ParseTree interface {
	// Head is the token that governs the node.
	Head() *Token
	// Category is the terminal the engine chose for the head.
	Category() GrammarCategory
	// Arguments lists the child trees in display order.
	Arguments() []Argument
	parseTree()
}

// Argument is a child tree together with the role it fills.
type Argument struct {
	Role Role
	Tree ParseTree
}

// VerbClause is a clause governed by a verb. Each single-valued role holds at
// most one constituent; a second one lands in Surplus.
type VerbClause struct {
	Verb  *Token
	Class GrammarCategory

	Subjective *NounClause
	Agentive   *NounClause
	Patientive *NounClause
	// Predicate is a noun or adjective tied to the subject by a copula.
	Predicate ParseTree
	// Complement is the noun half of a compound si verb.
	Complement *NounClause
	// Negation is the negating particle, if any.
	Negation *Token

	Adverbials []*AdverbialPhrase
	Datives    []*NounClause
	Topicals   []*NounClause
	Vocatives  []*NounClause

	// Surplus holds arguments whose slot was already taken.
	Surplus []Argument
}

func (v *VerbClause) Head() *Token              { return v.Verb }
func (v *VerbClause) Category() GrammarCategory { return v.Class }
func (*VerbClause) parseTree()                  {}

func (v *VerbClause) Arguments() []Argument {
	var out []Argument
	if v.Subjective != nil {
		out = append(out, Argument{RoleSubjective, v.Subjective})
	}
	if v.Agentive != nil {
		out = append(out, Argument{RoleAgentive, v.Agentive})
	}
	if v.Patientive != nil {
		out = append(out, Argument{RolePatientive, v.Patientive})
	}
	if v.Predicate != nil {
		out = append(out, Argument{RolePredicate, v.Predicate})
	}
	if v.Complement != nil {
		out = append(out, Argument{RoleComplement, v.Complement})
	}
	out = append(out, v.Surplus...)
	for _, a := range v.Adverbials {
		out = append(out, Argument{RoleAdverbial, a})
	}
	for _, n := range v.Datives {
		out = append(out, Argument{RoleDative, n})
	}
	for _, n := range v.Topicals {
		out = append(out, Argument{RoleTopical, n})
	}
	for _, n := range v.Vocatives {
		out = append(out, Argument{RoleVocative, n})
	}
	return out
}

// NounClause is a noun with its modifiers.
type NounClause struct {
	Noun *Token
	Case GrammarCategory

	Possessives []*NounClause
	Adjectives  []*AdjectivePhrase
	// Subclauses are attached with the particle "a"; each is a
	// *VerbClause or an *AdverbialPhrase.
	Subclauses []ParseTree
	// Marker is the "ma" particle of a vocative.
	Marker *Token
}

func (n *NounClause) Head() *Token              { return n.Noun }
func (n *NounClause) Category() GrammarCategory { return n.Case }
func (*NounClause) parseTree()                  {}

func (n *NounClause) Arguments() []Argument {
	var out []Argument
	for _, p := range n.Possessives {
		out = append(out, Argument{RolePossessive, p})
	}
	for _, a := range n.Adjectives {
		out = append(out, Argument{RoleAdjective, a})
	}
	for _, s := range n.Subclauses {
		out = append(out, Argument{RoleSubclause, s})
	}
	return out
}

// AdjectivePhrase is a bare adjective.
type AdjectivePhrase struct {
	Adjective *Token
	Class     GrammarCategory
}

func (a *AdjectivePhrase) Head() *Token              { return a.Adjective }
func (a *AdjectivePhrase) Category() GrammarCategory { return a.Class }
func (*AdjectivePhrase) Arguments() []Argument       { return nil }
func (*AdjectivePhrase) parseTree()                  {}

// AdverbialPhrase is an adverb, an adposition with its object, or a noun
// carrying an adposition suffix.
type AdverbialPhrase struct {
	Word  *Token
	Class GrammarCategory
	// Object is the noun governed by an adposition.
	Object *NounClause
}

func (a *AdverbialPhrase) Head() *Token              { return a.Word }
func (a *AdverbialPhrase) Category() GrammarCategory { return a.Class }
func (*AdverbialPhrase) parseTree()                  {}

func (a *AdverbialPhrase) Arguments() []Argument {
	if a.Object == nil {
		return nil
	}
	return []Argument{{RoleObject, a.Object}}
}

// Visitor handles each kind of parse tree. Adding a tree kind adds a method
// here, so every visitor has to deal with it.
type Visitor[T any] interface {
	VisitVerbClause(*VerbClause) T
	VisitNounClause(*NounClause) T
	VisitAdjectivePhrase(*AdjectivePhrase) T
	VisitAdverbialPhrase(*AdverbialPhrase) T
}

// Visit dispatches t to the matching method of v.
func Visit[T any](t ParseTree, v Visitor[T]) T {
	switch n := t.(type) {
	case *VerbClause:
		return v.VisitVerbClause(n)
	case *NounClause:
		return v.VisitNounClause(n)
	case *AdjectivePhrase:
		return v.VisitAdjectivePhrase(n)
	case *AdverbialPhrase:
		return v.VisitAdverbialPhrase(n)
	}
	panic(fmt.Sprintf("tslamyu: unknown parse tree %T", t))
}
