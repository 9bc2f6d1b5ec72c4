package lexicon

import (
	"fmt"
	"strings"
)

// Context restricts an ending to stems of a given shape.
type Context int

const (
	AfterAny Context = iota
	AfterVowel
	AfterConsonant
)

// Ending is one spelling of a case suffix.
type Ending struct {
	// Case names the case, e.g. "agentive".
	Case string
	// Affix is the canonical suffix of the case, reported in the
	// morphology whatever variant matched.
	Affix string
	// Text is the spelling of this variant.
	Text  string
	After Context
}

// fits reports whether e may follow stem.
func (e *Ending) fits(stem string) bool {
	switch e.After {
	case AfterVowel:
		return endsInVowel(stem)
	case AfterConsonant:
		return !endsInVowel(stem)
	}
	return true
}

// parseEnding reads one line of endings.nv:
//
//	case|canonical affix|spelling|context
//
// where context is v (after a vowel), c (after a consonant) or * (anywhere).
func parseEnding(line string) (*Ending, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 4 {
		return nil, fmt.Errorf("ending %q: want 4 fields, got %d", line, len(fields))
	}
	e := &Ending{
		Case:  strings.TrimSpace(fields[0]),
		Affix: NormalizeKey(fields[1]),
		Text:  NormalizeKey(fields[2]),
	}
	switch strings.TrimSpace(fields[3]) {
	case "v":
		e.After = AfterVowel
	case "c":
		e.After = AfterConsonant
	case "*", "":
		e.After = AfterAny
	default:
		return nil, fmt.Errorf("ending %q: unknown context %q", line, fields[3])
	}
	if e.Case == "" || e.Text == "" {
		return nil, fmt.Errorf("ending %q: empty case or spelling", line)
	}
	return e, nil
}
