package tslamyu

// caseCategories maps the case suffix of a nominal to its category. Both the
// canonical suffix and its phonological variants are accepted.
var caseCategories = map[string]GrammarCategory{
	"":    NounSubjective,
	"l":   NounAgentive,
	"ìl":  NounAgentive,
	"t":   NounPatientive,
	"ti":  NounPatientive,
	"it":  NounPatientive,
	"r":   NounDative,
	"ru":  NounDative,
	"ur":  NounDative,
	"ä":   NounGenitive,
	"yä":  NounGenitive,
	"ri":  NounTopical,
	"ìri": NounTopical,
}

// Classify maps one lexical analysis to the grammar categories it can fill.
// It is total: readings the grammar has no use for map to the empty set.
func Classify(a LexicalAnalysis) CategorySet {
	switch a.PartOfSpeech {
	case POSNoun, POSProperNoun, POSPronoun:
		if c, ok := caseCategories[a.CaseAffix()]; ok {
			return NewCategorySet(c)
		}
		return NewCategorySet(NounAdposition)
	case POSSiComplement:
		return NewCategorySet(SiComplement)
	case POSVerbIntransitive, POSVerbUnknown:
		return NewCategorySet(VerbIntransitive)
	case POSVerbTransitive:
		return NewCategorySet(VerbTransitive)
	case POSVerbCopula:
		return NewCategorySet(VerbCopula)
	case POSVerbModal:
		return NewCategorySet(VerbModal)
	case POSVerbSi:
		return NewCategorySet(VerbSi)
	case POSParticle:
		return classifyParticle(a)
	case POSAdjective:
		switch a.Attachment {
		case AttachPrenoun:
			return NewCategorySet(AdjectiveLeft)
		case AttachPostnoun:
			return NewCategorySet(AdjectiveRight)
		default:
			return NewCategorySet(Adjective)
		}
	case POSAdverb, POSPhrase, POSInterjection:
		return NewCategorySet(Adverb)
	case POSAdposition, POSAdpositionLen:
		return NewCategorySet(Adposition)
	}
	return 0
}

// classifyParticle goes by lexical identity, since particles share one type.
func classifyParticle(a LexicalAnalysis) CategorySet {
	word := a.Headword
	if word == "" {
		word = a.Surface
	}
	switch normalizeApostrophes(word) {
	case "a":
		return NewCategorySet(AttributiveLeft, AttributiveRight)
	case "ma":
		return NewCategorySet(Vocative)
	case "ke", "rä'ä":
		return NewCategorySet(Negation)
	}
	return 0
}
