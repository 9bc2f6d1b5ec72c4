package lexicon

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/tslamyu"
)

// Entry is one dictionary headword.
type Entry struct {
	// Headword is the dictionary spelling.
	Headword string
	// Key is NormalizeKey(Headword).
	Key string
	POS tslamyu.PartOfSpeech
	// Glosses are the English renderings, most common first.
	Glosses []tslamyu.Gloss
}

// parseEntry reads one line of words.nv:
//
//	headword|type|gloss[;gloss...][|short gloss]
func parseEntry(line string) (*Entry, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 3 {
		return nil, fmt.Errorf("entry %q: want at least 3 fields, got %d", line, len(fields))
	}
	headword := strings.TrimSpace(fields[0])
	if headword == "" {
		return nil, fmt.Errorf("entry %q: empty headword", line)
	}
	e := &Entry{
		Headword: headword,
		Key:      NormalizeKey(headword),
		POS:      tslamyu.PartOfSpeech(strings.TrimSpace(fields[1])),
	}
	for _, g := range strings.Split(fields[2], ";") {
		if g = strings.TrimSpace(g); g != "" {
			e.Glosses = append(e.Glosses, tslamyu.Gloss{Text: g})
		}
	}
	if len(fields) > 3 && len(e.Glosses) > 0 {
		e.Glosses[0].Short = strings.TrimSpace(fields[3])
	}
	return e, nil
}

// analysis builds the reading of surface as a form of e. caseAffix is
// the canonical suffix found in the case slot.
func (e *Entry) analysis(surface, caseAffix string) tslamyu.LexicalAnalysis {
	morph := make([]string, tslamyu.MorphologySlots)
	morph[tslamyu.StemSlot] = e.Headword
	morph[tslamyu.CaseSlot] = caseAffix
	a := tslamyu.LexicalAnalysis{
		Surface:      surface,
		Headword:     e.Headword,
		PartOfSpeech: e.POS,
		Morphology:   morph,
		Glosses:      e.Glosses,
	}
	if e.POS == tslamyu.POSProperNoun {
		a.CanonicalSpelling = e.Headword
	}
	return a
}

// Gloss returns the shortest English rendering of e.
func (e *Entry) Gloss() string {
	return tslamyu.ShortestGloss(tslamyu.LexicalAnalysis{Surface: e.Headword, PartOfSpeech: e.POS, Glosses: e.Glosses})
}
