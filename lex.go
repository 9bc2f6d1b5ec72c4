package tslamyu

import "fmt"

// Token is a word that survived lexing, carrying every category the
// grammar may assign to it.
type Token struct {
	Value string
	// Position is the 1-based position of the word in the sentence, counted
	// before unrecognized words were dropped.
	Position   int
	Categories CategorySet
	Analyses   []LexicalAnalysis
}

// AnalysisFor returns the first reading of t that classifies as c. The
// second result is false when no reading does.
func (t *Token) AnalysisFor(c GrammarCategory) (LexicalAnalysis, bool) {
	for _, a := range t.Analyses {
		if Classify(a).Has(c) {
			return a, true
		}
	}
	return LexicalAnalysis{}, false
}

// IssueKind tells why lexing dropped a word.
type IssueKind int

const (
	// IssueUnrecognized: the lookup returned no reading at all.
	IssueUnrecognized IssueKind = iota
	// IssueUnsupported: every reading has a type the grammar cannot use.
	IssueUnsupported
)

// LexIssue is a recoverable problem found while lexing one word.
type LexIssue struct {
	Word     string
	Position int
	Kind     IssueKind
}

func (i LexIssue) String() string {
	switch i.Kind {
	case IssueUnrecognized:
		return fmt.Sprintf("Word [%s] not recognized; ignoring it", i.Word)
	default:
		return fmt.Sprintf("Word [%s] has a type that the grammar analyzer doesn't understand yet; ignoring it", i.Word)
	}
}

// Diagnostics collects what lexing had to say about a sentence. Issues are
// meant for the user; Notes for whoever maintains the classifier.
type Diagnostics struct {
	Issues []LexIssue
	Notes  []string
}

// Messages renders the user-facing issues.
func (d Diagnostics) Messages() []string {
	out := make([]string, 0, len(d.Issues))
	for _, i := range d.Issues {
		out = append(out, i.String())
	}
	return out
}

// Lex turns per-word analyses into grammar tokens. Words that cannot be used
// are dropped with an issue; lexing itself never fails.
func Lex(words []Word, opts Options) ([]Token, Diagnostics) {
	var (
		tokens []Token
		diag   Diagnostics
	)
	for _, w := range words {
		if len(w.Analyses) == 0 {
			diag.Issues = append(diag.Issues, LexIssue{Word: w.Surface, Position: w.Position, Kind: IssueUnrecognized})
			continue
		}
		var cats CategorySet
		for _, a := range w.Analyses {
			c := Classify(a)
			if c.Empty() {
				note := fmt.Sprintf("Word [%s] has type '%s' that the grammar analyzer doesn't understand yet", w.Surface, a.PartOfSpeech)
				opts.logger().Debug(note)
				if opts.DeveloperNotes {
					diag.Notes = append(diag.Notes, note)
				}
				continue
			}
			cats = cats.Union(c)
		}
		if cats.Empty() {
			diag.Issues = append(diag.Issues, LexIssue{Word: w.Surface, Position: w.Position, Kind: IssueUnsupported})
			continue
		}
		tokens = append(tokens, Token{
			Value:      w.Surface,
			Position:   w.Position,
			Categories: cats,
			Analyses:   w.Analyses,
		})
	}
	return tokens, diag
}

// SplitWords breaks a sentence into words. Apostrophes and the letters ì
// and ä belong to words; everything else separates them.
func SplitWords(sentence string) []string {
	return reWord.FindAllString(normalizeApostrophes(sentence), -1)
}
