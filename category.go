package tslamyu

import (
	"math/bits"
	"strings"
)

// GrammarCategory is a terminal symbol of the grammar. Every token offers
// the engine one or more of them.
type GrammarCategory uint8

const (
	NounSubjective GrammarCategory = iota
	NounAgentive
	NounPatientive
	NounDative
	NounGenitive
	NounTopical
	// NounAdposition covers a noun carrying any suffix that is not one of
	// the six cases, in practice an adposition attached as a suffix.
	NounAdposition
	VerbIntransitive
	VerbTransitive
	VerbCopula
	VerbModal
	VerbSi
	// SiComplement marks the noun half of a compound "si" verb.
	SiComplement
	AttributiveLeft
	AttributiveRight
	Vocative
	Negation
	Adjective
	AdjectiveLeft
	AdjectiveRight
	Adposition
	Adverb

	numCategories
)

var categoryNames = [numCategories]string{
	NounSubjective:   "n_subjective",
	NounAgentive:     "n_agentive",
	NounPatientive:   "n_patientive",
	NounDative:       "n_dative",
	NounGenitive:     "n_genitive",
	NounTopical:      "n_topical",
	NounAdposition:   "n_adposition",
	VerbIntransitive: "vin",
	VerbTransitive:   "vtr",
	VerbCopula:       "vcp",
	VerbModal:        "vm",
	VerbSi:           "vsi",
	SiComplement:     "vsi_comp",
	AttributiveLeft:  "a_left",
	AttributiveRight: "a_right",
	Vocative:         "ma",
	Negation:         "ke",
	Adjective:        "adj",
	AdjectiveLeft:    "adj_left",
	AdjectiveRight:   "adj_right",
	Adposition:       "adp",
	Adverb:           "adv",
}

func (c GrammarCategory) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// IsNoun reports whether c is one of the noun cases.
func (c GrammarCategory) IsNoun() bool {
	return c <= NounAdposition
}

// IsVerb reports whether c is one of the verb valence classes.
func (c GrammarCategory) IsVerb() bool {
	return c >= VerbIntransitive && c <= VerbSi
}

// CategorySet is a set of grammar categories. The zero value is empty.
type CategorySet uint32

// NewCategorySet returns a set holding cs.
func NewCategorySet(cs ...GrammarCategory) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// With returns s plus c.
func (s CategorySet) With(c GrammarCategory) CategorySet { return s | 1<<c }

// Union returns every category in s or o.
func (s CategorySet) Union(o CategorySet) CategorySet { return s | o }

// Has reports whether c is in s.
func (s CategorySet) Has(c GrammarCategory) bool { return s&(1<<c) != 0 }

// Empty reports whether s holds nothing.
func (s CategorySet) Empty() bool { return s == 0 }

// Len returns the number of categories in s.
func (s CategorySet) Len() int { return bits.OnesCount32(uint32(s)) }

// Slice lists the categories of s in declaration order.
func (s CategorySet) Slice() []GrammarCategory {
	out := make([]GrammarCategory, 0, s.Len())
	for c := GrammarCategory(0); c < numCategories; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Slice() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
