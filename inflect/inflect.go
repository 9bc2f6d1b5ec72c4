// Package inflect conjugates English verbs for the glosser.
package inflect

import "strings"

// Form is a verb form the glosser can ask for.
type Form int

const (
	// Base is the bare infinitive: "run".
	Base Form = iota
	// ThirdSingular is the present tense after he/she/it: "runs".
	ThirdSingular
)

// irregular third person singular forms.
var irregular = map[string]string{
	"be":   "is",
	"have": "has",
	"do":   "does",
	"go":   "goes",
}

// modals never take an ending.
var modals = map[string]bool{
	"can":    true,
	"could":  true,
	"may":    true,
	"might":  true,
	"must":   true,
	"shall":  true,
	"should": true,
	"will":   true,
	"would":  true,
	"ought":  true,
}

// English conjugates with Conjugate.
type English struct{}

// Conjugate returns verb in form f.
func (English) Conjugate(verb string, f Form) string { return Conjugate(verb, f) }

// Conjugate returns verb in form f. Only the first word of a phrasal verb
// is inflected: "look at" becomes "looks at".
func Conjugate(verb string, f Form) string {
	verb = strings.TrimSpace(verb)
	if f == Base || verb == "" {
		return verb
	}
	head, rest, _ := strings.Cut(verb, " ")
	out := thirdSingular(head)
	if rest != "" {
		out += " " + rest
	}
	return out
}

func thirdSingular(w string) string {
	lower := strings.ToLower(w)
	if s, ok := irregular[lower]; ok {
		return s
	}
	if modals[lower] {
		return w
	}
	switch {
	case hasAnySuffix(lower, "s", "x", "z", "ch", "sh", "o"):
		return w + "es"
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(lower[len(lower)-2]):
		return w[:len(w)-1] + "ies"
	}
	return w + "s"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}
