package tslamyu

import (
	"regexp"
	"strings"
)

// apostropheReplacer folds the typographic variants of the glottal stop
// onto the ASCII apostrophe.
var apostropheReplacer = strings.NewReplacer(
	"\u2019", "'",
	"\u2018", "'",
	"\u02bc", "'",
	"`", "'",
)

func normalizeApostrophes(s string) string {
	return strings.ToLower(apostropheReplacer.Replace(s))
}

// reWord matches one word: letters (ì and ä included) and apostrophes.
var reWord = regexp.MustCompile(`[\p{L}']+`)
