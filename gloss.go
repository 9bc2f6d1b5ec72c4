package tslamyu

import "strings"

// ShortestGloss returns the most compact English rendering of a reading: its
// curated short gloss when there is one, otherwise the first gloss cut before
// any parenthesis, comma or semicolon. Verb readings also lose a leading "to ".
func ShortestGloss(a LexicalAnalysis) string {
	if len(a.Glosses) == 0 {
		return a.Surface
	}
	g := a.Glosses[0]
	if g.Short != "" {
		return g.Short
	}
	text := g.Text
	if i := strings.IndexAny(text, "(,;"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if a.PartOfSpeech.IsVerb() {
		text = strings.TrimSpace(strings.TrimPrefix(text, "to "))
	}
	return text
}
