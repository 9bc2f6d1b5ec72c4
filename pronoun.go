package tslamyu

import "strings"

// nounCase selects the English form of a noun phrase.
type nounCase int

const (
	caseSubjective nounCase = iota
	caseObject
	casePossessive
)

// pronoun lists the English forms of one personal pronoun.
type pronoun struct {
	subjective string
	object     string
	possessive string
	// copula is the present tense of "to be" agreeing with the pronoun.
	copula string
}

func (p pronoun) form(c nounCase) string {
	switch c {
	case caseObject:
		return p.object
	case casePossessive:
		return p.possessive
	}
	return p.subjective
}

// pronouns is keyed by the short gloss of the Na'vi pronoun.
var pronouns = map[string]pronoun{
	"i":       {"I", "me", "my", "am"},
	"you":     {"you", "you", "your", "are"},
	"he":      {"he", "him", "his", "is"},
	"she":     {"she", "her", "her", "is"},
	"it":      {"it", "it", "its", "is"},
	"we":      {"we", "us", "our", "are"},
	"they":    {"they", "them", "their", "are"},
	"he/she":  {"he/she", "him/her", "his/her", "is"},
	"oneself": {"oneself", "oneself", "one's own", "is"},
}

func lookupPronoun(gloss string) (pronoun, bool) {
	p, ok := pronouns[strings.ToLower(gloss)]
	return p, ok
}
