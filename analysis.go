package tslamyu

// PartOfSpeech is the dictionary word type reported by the lexical analysis
// service. The values are the service's own type codes.
type PartOfSpeech string

const (
	POSNoun             PartOfSpeech = "n"
	POSProperNoun       PartOfSpeech = "n:pr"
	POSPronoun          PartOfSpeech = "pn"
	POSSiComplement     PartOfSpeech = "n:si"
	POSVerbIntransitive PartOfSpeech = "v:in"
	POSVerbTransitive   PartOfSpeech = "v:tr"
	POSVerbCopula       PartOfSpeech = "v:cp"
	POSVerbModal        PartOfSpeech = "v:m"
	POSVerbSi           PartOfSpeech = "v:si"
	POSVerbUnknown      PartOfSpeech = "v:?"
	POSAdjective        PartOfSpeech = "adj"
	POSAdverb           PartOfSpeech = "adv"
	POSAdposition       PartOfSpeech = "adp"
	POSAdpositionLen    PartOfSpeech = "adp:len"
	POSParticle         PartOfSpeech = "part"
	POSInterjection     PartOfSpeech = "intj"
	POSPhrase           PartOfSpeech = "phr"
	POSConjunction      PartOfSpeech = "conj"
	POSNumeral          PartOfSpeech = "num"
	POSInterrogative    PartOfSpeech = "inter"
	POSCorrelative      PartOfSpeech = "ctr"
	POSPrefix           PartOfSpeech = "aff:pre"
	POSInfix            PartOfSpeech = "aff:in"
	POSSuffix           PartOfSpeech = "aff:suf"
)

// IsNominal reports whether p declines for case.
func (p PartOfSpeech) IsNominal() bool {
	return p == POSNoun || p == POSProperNoun || p == POSPronoun
}

// IsVerb reports whether p is one of the verb classes.
func (p PartOfSpeech) IsVerb() bool {
	switch p {
	case POSVerbIntransitive, POSVerbTransitive, POSVerbCopula,
		POSVerbModal, POSVerbSi, POSVerbUnknown:
		return true
	}
	return false
}

// Attachment is the position an adjective form takes relative to its noun.
type Attachment string

const (
	AttachNone        Attachment = ""
	AttachPrenoun     Attachment = "prenoun"
	AttachPostnoun    Attachment = "postnoun"
	AttachPredicative Attachment = "predicative"
)

// Morphology slot layout. Only CaseSlot is read by the classifier.
const (
	DeterminerSlot  = 0
	PluralSlot      = 1
	StemSlot        = 3
	CaseSlot        = 5
	MorphologySlots = 7
)

// Gloss is one English rendering of a dictionary entry.
type Gloss struct {
	// Text is the full dictionary gloss, e.g. "to hunt; chase".
	Text string
	// Short is an optional curated one-word form of Text.
	Short string
}

// LexicalAnalysis is one reading of a word form as produced by the lexical
// analysis service. Values are treated as immutable once constructed.
type LexicalAnalysis struct {
	// Surface is the word form as written in the sentence.
	Surface string
	// Headword is the dictionary spelling of the entry.
	Headword string
	// PartOfSpeech is the entry's word type.
	PartOfSpeech PartOfSpeech
	// Morphology holds the affix found in each slot; CaseSlot carries the
	// canonical case suffix for nominals ("" when unmarked).
	Morphology []string
	// Attachment is set for adjective forms.
	Attachment Attachment
	Glosses    []Gloss
	// SuffixGloss renders an adposition carried as a case suffix.
	SuffixGloss string
	// CanonicalSpelling is set for proper nouns.
	CanonicalSpelling string
}

// CaseAffix returns the case suffix of a nominal reading, or "" when the
// morphology carries no case slot.
func (a LexicalAnalysis) CaseAffix() string {
	if len(a.Morphology) <= CaseSlot {
		return ""
	}
	return a.Morphology[CaseSlot]
}

// Word is one word of a sentence together with every reading the lexical
// analysis service returned for it.
type Word struct {
	Surface string
	// Position is the 1-based position of the word in the sentence.
	Position int
	Analyses []LexicalAnalysis
}
