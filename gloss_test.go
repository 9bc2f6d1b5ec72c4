package tslamyu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortestGloss(t *testing.T) {
	short := reading("tsun", POSVerbModal, "can, be able to")
	short.Glosses[0].Short = "can"

	tests := []struct {
		name string
		in   LexicalAnalysis
		want string
	}{
		{"verb drops to", reading("tul", POSVerbIntransitive, "to run"), "run"},
		{"copula cut at semicolon", reading("lu", POSVerbCopula, "to be; to have"), "be"},
		{"adverb keeps to", reading("ftärpa", POSAdverb, "to the left"), "to the left"},
		{"adposition keeps to", reading("ne", POSAdposition, "to (direction)"), "to"},
		{"cut at comma", reading("oe", POSPronoun, "I, me"), "I"},
		{"cut at parenthesis", reading("tute", POSNoun, "person (of any species)"), "person"},
		{"short gloss wins", short, "can"},
		{"no gloss", reading("kxa", POSNoun, ""), "kxa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortestGloss(tt.in))
		})
	}
}
