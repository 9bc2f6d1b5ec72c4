package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConjugateThirdSingular(t *testing.T) {
	tests := []struct {
		verb string
		want string
	}{
		{"run", "runs"},
		{"hunt", "hunts"},
		{"be", "is"},
		{"have", "has"},
		{"do", "does"},
		{"go", "goes"},
		{"can", "can"},
		{"must", "must"},
		{"watch", "watches"},
		{"wash", "washes"},
		{"fix", "fixes"},
		{"buzz", "buzzes"},
		{"pass", "passes"},
		{"fly", "flies"},
		{"play", "plays"},
		{"look at", "looks at"},
		{"be able to", "is able to"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Conjugate(tt.verb, ThirdSingular), "Conjugate(%q)", tt.verb)
	}
}

func TestConjugateBase(t *testing.T) {
	assert.Equal(t, "run", Conjugate(" run ", Base))
	assert.Equal(t, "look at", English{}.Conjugate("look at", Base))
}
