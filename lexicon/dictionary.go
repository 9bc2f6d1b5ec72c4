// Package lexicon provides word lookups for the analyzer: a Dictionary
// backed by local data files and a Client for a Reykunyu-style web service.
package lexicon

import (
	"context"
	"strings"

	"github.com/cours-de-latin/tslamyu"
)

// caseInfo pairs a case name with its canonical affix.
type caseInfo struct {
	name  string
	affix string
}

// Dictionary analyzes word forms against entries and case endings loaded
// from a data directory. It is read-only after New and safe for concurrent
// use.
type Dictionary struct {
	// entries maps NormalizeKey(headword) to every entry spelled that way.
	entries map[string][]*Entry
	// order lists the keys of entries in file order.
	order []string
	// endings maps the spelling of a case suffix to its readings.
	endings map[string][]*Ending
	// endingList holds the same endings in file order.
	endingList []*Ending
	// cases lists the declined cases in file order.
	cases []caseInfo
}

// New loads words.nv and endings.nv from dataDir.
func New(dataDir string) (*Dictionary, error) {
	d := &Dictionary{
		entries: make(map[string][]*Entry),
		endings: make(map[string][]*Ending),
	}
	if err := d.loadWords(dataDir); err != nil {
		return nil, err
	}
	if err := d.loadEndings(dataDir); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) addEntry(e *Entry) {
	if _, ok := d.entries[e.Key]; !ok {
		d.order = append(d.order, e.Key)
	}
	d.entries[e.Key] = append(d.entries[e.Key], e)
}

// Len returns the number of distinct headwords.
func (d *Dictionary) Len() int { return len(d.order) }

// Entries returns the entries spelled word.
func (d *Dictionary) Entries(word string) []*Entry {
	return d.entries[NormalizeKey(word)]
}

// Lookup implements tslamyu.Lookup. It fails only when ctx is done.
func (d *Dictionary) Lookup(ctx context.Context, word string) ([]tslamyu.LexicalAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.Analyze(word), nil
}

// Analyze returns every reading of form: the bare headword, then a noun
// followed by a case ending or an adposition suffix, then an adjective in
// its prenoun (lora) or postnoun (alor) form.
func (d *Dictionary) Analyze(form string) []tslamyu.LexicalAnalysis {
	key := NormalizeKey(form)
	var out []tslamyu.LexicalAnalysis

	for _, e := range d.entries[key] {
		a := e.analysis(form, "")
		if e.POS == tslamyu.POSAdjective {
			a.Attachment = tslamyu.AttachPredicative
		}
		out = append(out, a)
	}

	// Split at each rune boundary: key[:i] is the stem, key[i:] the suffix.
	runes := []rune(key)
	for i := 1; i < len(runes); i++ {
		stem, suffix := string(runes[:i]), string(runes[i:])
		for _, e := range d.entries[stem] {
			switch {
			case e.POS.IsNominal():
				out = append(out, d.declined(e, form, stem, suffix)...)
			case e.POS == tslamyu.POSAdjective && suffix == "a":
				a := e.analysis(form, "")
				a.Attachment = tslamyu.AttachPrenoun
				out = append(out, a)
			}
		}
	}

	if rest, ok := strings.CutPrefix(key, "a"); ok {
		for _, e := range d.entries[rest] {
			if e.POS == tslamyu.POSAdjective {
				a := e.analysis(form, "")
				a.Attachment = tslamyu.AttachPostnoun
				out = append(out, a)
			}
		}
	}
	return out
}

// declined returns the readings of stem+suffix as a case form of e.
func (d *Dictionary) declined(e *Entry, form, stem, suffix string) []tslamyu.LexicalAnalysis {
	var out []tslamyu.LexicalAnalysis
	seen := make(map[string]bool)
	for _, end := range d.endings[suffix] {
		if !end.fits(stem) || seen[end.Affix] {
			continue
		}
		seen[end.Affix] = true
		out = append(out, e.analysis(form, end.Affix))
	}
	for _, adp := range d.entries[suffix] {
		if adp.POS != tslamyu.POSAdposition && adp.POS != tslamyu.POSAdpositionLen {
			continue
		}
		a := e.analysis(form, adp.Headword)
		a.SuffixGloss = adp.Gloss()
		out = append(out, a)
	}
	return out
}
