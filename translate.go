package tslamyu

import (
	"strings"

	"github.com/cours-de-latin/tslamyu/inflect"
)

// Inflector conjugates English verbs.
type Inflector interface {
	Conjugate(verb string, f inflect.Form) string
}

const determiner = "a/the"

// Translator renders parse trees as English in a fixed word order.
type Translator struct {
	Inflector Inflector
}

// Translate renders t with the default English inflector.
func Translate(t ParseTree) string {
	return Translator{}.Translate(t)
}

// Translate renders t. It never fails: anything it cannot render well falls
// back to the shortest gloss of the words involved.
func (tr Translator) Translate(t ParseTree) string {
	if t == nil {
		return ""
	}
	return Visit[string](t, tr)
}

func (tr Translator) conjugate(verb string, f inflect.Form) string {
	if tr.Inflector == nil {
		return inflect.Conjugate(verb, f)
	}
	return tr.Inflector.Conjugate(verb, f)
}

func (tr Translator) VisitVerbClause(v *VerbClause) string {
	var subjectNoun *NounClause
	switch {
	case v.Agentive != nil:
		subjectNoun = v.Agentive
	case v.Subjective != nil:
		subjectNoun = v.Subjective
	}
	subject := "it"
	if subjectNoun != nil {
		subject = tr.noun(subjectNoun, caseSubjective)
	}

	var object string
	switch {
	case v.Patientive != nil:
		object = tr.noun(v.Patientive, caseObject)
	case v.Predicate != nil:
		object = tr.predicate(v.Predicate)
	}

	parts := []string{subject, tr.verb(v, subjectNoun), object}
	for _, a := range v.Adverbials {
		parts = append(parts, tr.VisitAdverbialPhrase(a))
	}
	for _, d := range v.Datives {
		parts = append(parts, "to "+tr.noun(d, caseObject))
	}
	for _, t := range v.Topicals {
		parts = append(parts, "as for "+tr.noun(t, caseObject))
	}
	for _, n := range v.Vocatives {
		parts = append(parts, "O "+tr.noun(n, caseSubjective))
	}
	return joinWords(parts...)
}

// verb renders the verb of v. Only the copula agrees with a pronoun subject,
// which may be nil; every other verb is third person singular.
func (tr Translator) verb(v *VerbClause, subject *NounClause) string {
	if v.Class == VerbCopula {
		be := "is"
		if p, ok := subjectPronoun(subject); ok {
			be = p.copula
		}
		if v.Negation != nil {
			return be + " not"
		}
		return be
	}

	base := glossOf(v.Verb, v.Class)
	if v.Complement != nil {
		base = glossOf(v.Complement.Noun, SiComplement)
	}
	if v.Negation != nil && v.Class == VerbModal {
		return base + " not"
	}
	if v.Negation != nil {
		return "does not " + base
	}
	return tr.conjugate(base, inflect.ThirdSingular)
}

func subjectPronoun(n *NounClause) (pronoun, bool) {
	if n == nil {
		return pronoun{}, false
	}
	a, ok := n.Noun.AnalysisFor(n.Case)
	if !ok || a.PartOfSpeech != POSPronoun {
		return pronoun{}, false
	}
	return lookupPronoun(ShortestGloss(a))
}

func (tr Translator) predicate(t ParseTree) string {
	if n, ok := t.(*NounClause); ok {
		if n.Case == NounGenitive {
			return tr.noun(n, casePossessive)
		}
		return tr.noun(n, caseObject)
	}
	return tr.Translate(t)
}

func (tr Translator) VisitNounClause(n *NounClause) string {
	return tr.noun(n, caseSubjective)
}

func (tr Translator) noun(n *NounClause, c nounCase) string {
	a, _ := n.Noun.AnalysisFor(n.Case)
	gloss := ShortestGloss(a)

	var head string
	det := determiner
	switch a.PartOfSpeech {
	case POSPronoun:
		if p, ok := lookupPronoun(gloss); ok {
			head = p.form(c)
		} else {
			head = gloss
		}
		det = ""
	case POSProperNoun:
		head = properSpelling(a, n.Noun)
		if c == casePossessive {
			head += "'s"
		}
		det = ""
	default:
		head = gloss
		if c == casePossessive {
			head += "'s"
			det = ""
		}
	}

	var trailing []string
	ownerFree := a.PartOfSpeech != POSPronoun
	for _, p := range n.Possessives {
		owner := tr.noun(p, casePossessive)
		if ownerFree && !strings.Contains(owner, " ") {
			det, ownerFree = owner, false
			continue
		}
		trailing = append(trailing, "of "+tr.noun(p, caseObject))
	}

	words := []string{det}
	for _, adj := range n.Adjectives {
		words = append(words, tr.VisitAdjectivePhrase(adj))
	}
	words = append(words, head)
	words = append(words, trailing...)
	for _, s := range n.Subclauses {
		words = append(words, "[ that "+tr.Translate(s)+" ]")
	}
	return joinWords(words...)
}

func properSpelling(a LexicalAnalysis, tok *Token) string {
	switch {
	case a.CanonicalSpelling != "":
		return a.CanonicalSpelling
	case a.Headword != "":
		return a.Headword
	}
	return tok.Value
}

func (tr Translator) VisitAdjectivePhrase(a *AdjectivePhrase) string {
	return glossOf(a.Adjective, a.Class)
}

func (tr Translator) VisitAdverbialPhrase(a *AdverbialPhrase) string {
	switch a.Class {
	case Adposition:
		if a.Object == nil {
			return glossOf(a.Word, a.Class)
		}
		return joinWords(glossOf(a.Word, a.Class), tr.noun(a.Object, caseObject))
	case NounAdposition:
		an, _ := a.Word.AnalysisFor(NounAdposition)
		prep := an.SuffixGloss
		if prep == "" {
			prep = an.CaseAffix()
		}
		if a.Object == nil {
			self := &NounClause{Noun: a.Word, Case: NounAdposition}
			return joinWords(prep, tr.noun(self, caseObject))
		}
		return joinWords(prep, tr.noun(a.Object, caseObject))
	}
	return glossOf(a.Word, a.Class)
}

// glossOf returns the shortest gloss of the reading of tok that fills c.
func glossOf(tok *Token, c GrammarCategory) string {
	if a, ok := tok.AnalysisFor(c); ok {
		return ShortestGloss(a)
	}
	return tok.Value
}

func joinWords(words ...string) string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
