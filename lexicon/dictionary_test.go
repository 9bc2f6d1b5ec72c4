package lexicon

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/tslamyu"
)

const dataDir = "../data"

var _ tslamyu.Lookup = (*Dictionary)(nil)

func TestNew(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Greater(t, d.Len(), 20)
	t.Logf("Loaded %d headwords, %d endings", d.Len(), len(d.endingList))
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewBadEnding(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.nv"), []byte("tute|n|person\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "endings.nv"), []byte("! comment\nagentive|l|l|q\n"), 0o644))
	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestAnalyzeCases(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)

	tests := []struct {
		form     string
		headword string
		affix    string
	}{
		{"tute", "tute", ""},
		{"tutel", "tute", "l"},
		{"ioangìl", "ioang", "l"},
		{"tuteti", "tute", "t"},
		{"ioangit", "ioang", "t"},
		{"oeru", "oe", "r"},
		{"srayur", "sray", "r"},
		{"oeyä", "oe", "ä"},
		{"tuteri", "tute", "ri"},
		{"sraymì", "sray", "mì"},
	}
	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			var found bool
			for _, a := range d.Analyze(tt.form) {
				if a.Headword == tt.headword && a.CaseAffix() == tt.affix {
					found = true
					assert.Equal(t, tt.form, a.Surface)
				}
			}
			assert.True(t, found, "no reading %s+%q for %s", tt.headword, tt.affix, tt.form)
		})
	}
}

func TestAnalyzeRespectsContext(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)
	// ìl follows consonants only.
	for _, a := range d.Analyze("tuteìl") {
		assert.NotEqual(t, "l", a.CaseAffix(), "tuteìl must not read as agentive")
	}
}

func TestAnalyzeAdjectiveForms(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)

	tests := []struct {
		form string
		want tslamyu.Attachment
	}{
		{"lor", tslamyu.AttachPredicative},
		{"lora", tslamyu.AttachPrenoun},
		{"alor", tslamyu.AttachPostnoun},
	}
	for _, tt := range tests {
		got := d.Analyze(tt.form)
		require.Len(t, got, 1, tt.form)
		assert.Equal(t, tslamyu.POSAdjective, got[0].PartOfSpeech)
		assert.Equal(t, tt.want, got[0].Attachment, tt.form)
		assert.Equal(t, "beautiful", tslamyu.ShortestGloss(got[0]))
	}
}

func TestAnalyzeProperNoun(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)
	got := d.Analyze("ioangìl")
	require.NotEmpty(t, got)
	assert.Equal(t, "ioang", got[0].CanonicalSpelling)
	assert.Equal(t, tslamyu.POSProperNoun, got[0].PartOfSpeech)
}

func TestAnalyzeNormalizesApostrophes(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)
	got := d.Analyze("Fe’")
	require.Len(t, got, 1)
	assert.Equal(t, "fe'", got[0].Headword)
	assert.Equal(t, "Fe’", got[0].Surface)
}

func TestAnalyzeUnknown(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)
	assert.Empty(t, d.Analyze("blarg"))
}

func TestLookupCancelled(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Lookup(ctx, "tute")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeclension(t *testing.T) {
	d, err := New(dataDir)
	require.NoError(t, err)

	table := d.Declension("tute")
	require.NotNil(t, table)
	assert.Equal(t, []string{"subjective", "agentive", "patientive", "dative", "genitive", "topical"}, table.Cases)
	assert.Equal(t, []string{"tutel"}, table.Forms["agentive"])
	assert.Equal(t, []string{"tutet", "tuteti"}, table.Forms["patientive"])
	assert.Equal(t, []string{"tuteyä", "tuteä"}, table.Forms["genitive"])

	// Every form in the table must analyze back to its case.
	for _, c := range table.Cases[1:] {
		for _, form := range table.Forms[c] {
			var ok bool
			for _, a := range d.Analyze(form) {
				ok = ok || a.Headword == "tute"
			}
			assert.True(t, ok, form)
		}
	}

	assert.Nil(t, d.Declension("tul"), "verbs do not decline")
	assert.Nil(t, d.Declension("blarg"))
}
