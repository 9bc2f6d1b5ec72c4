package lexicon

import (
	"strings"
	"unicode/utf8"
)

// glottalReplacer folds the typographic variants of the tìftang (glottal
// stop) onto the ASCII apostrophe.
var glottalReplacer = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"`", "'",
)

// NormalizeKey returns the lookup key of a word form: lower case, with
// every glottal stop spelled as an apostrophe.
func NormalizeKey(s string) string {
	return strings.ToLower(glottalReplacer.Replace(strings.TrimSpace(s)))
}

// vowels of the Na'vi orthography.
const vowels = "aäeiìouù"

// endsInVowel reports whether s ends in a vowel letter.
func endsInVowel(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && strings.ContainsRune(vowels, r)
}
