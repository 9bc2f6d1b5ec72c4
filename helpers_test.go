package tslamyu

func reading(surface string, pos PartOfSpeech, gloss string) LexicalAnalysis {
	a := LexicalAnalysis{Surface: surface, Headword: surface, PartOfSpeech: pos}
	if gloss != "" {
		a.Glosses = []Gloss{{Text: gloss}}
	}
	return a
}

func cased(a LexicalAnalysis, affix string) LexicalAnalysis {
	a.Morphology = make([]string, MorphologySlots)
	a.Morphology[CaseSlot] = affix
	return a
}

func attached(a LexicalAnalysis, at Attachment) LexicalAnalysis {
	a.Attachment = at
	return a
}

func mkTok(pos int, value string, analyses ...LexicalAnalysis) *Token {
	var cats CategorySet
	for _, a := range analyses {
		cats = cats.Union(Classify(a))
	}
	return &Token{Value: value, Position: pos, Categories: cats, Analyses: analyses}
}

func mkNoun(t *Token, c GrammarCategory) *NounClause {
	return &NounClause{Noun: t, Case: c}
}

// A small vocabulary for hand-built trees.

func ioang(pos int, affix, value string) *Token {
	return mkTok(pos, value, cased(reading("ioang", POSProperNoun, "ioang"), affix))
}

func tute(pos int, affix, value string) *Token {
	return mkTok(pos, value, cased(reading("tute", POSNoun, "person"), affix))
}

func oe(pos int, affix, value string) *Token {
	return mkTok(pos, value, cased(reading("oe", POSPronoun, "I, me"), affix))
}

func tul(pos int) *Token { return mkTok(pos, "tul", reading("tul", POSVerbIntransitive, "to run")) }

func taron(pos int) *Token { return mkTok(pos, "taron", reading("taron", POSVerbTransitive, "to hunt")) }

func lu(pos int) *Token {
	a := reading("lu", POSVerbCopula, "to be; to have")
	a.Glosses[0].Short = "be"
	return mkTok(pos, "lu", a)
}

func ke(pos int) *Token { return mkTok(pos, "ke", reading("ke", POSParticle, "not")) }
