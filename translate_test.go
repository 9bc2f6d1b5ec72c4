package tslamyu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cours-de-latin/tslamyu/inflect"
)

func intransitive(verb *Token, subject *NounClause) *VerbClause {
	return &VerbClause{Verb: verb, Class: VerbIntransitive, Subjective: subject}
}

func TestTranslateClauses(t *testing.T) {
	lor := func(pos int) *AdjectivePhrase {
		return &AdjectivePhrase{
			Adjective: mkTok(pos, "lor", attached(reading("lor", POSAdjective, "beautiful"), AttachPredicative)),
			Class:     Adjective,
		}
	}
	tsun := reading("tsun", POSVerbModal, "can, be able to")
	tsun.Glosses[0].Short = "can"
	uvan := mkTok(2, "uvan", reading("uvan", POSSiComplement, "play, game"))
	si := mkTok(3, "si", reading("si", POSVerbSi, "to do, make"))

	tests := []struct {
		name string
		tree ParseTree
		want string
	}{
		{
			name: "proper noun subject",
			tree: intransitive(tul(2), mkNoun(ioang(1, "", "ioang"), NounSubjective)),
			want: "ioang runs",
		},
		{
			name: "agentive and patientive",
			tree: &VerbClause{
				Verb:       taron(1),
				Class:      VerbTransitive,
				Agentive:   mkNoun(ioang(2, "l", "ioangìl"), NounAgentive),
				Patientive: mkNoun(tute(3, "t", "tuteti"), NounPatientive),
			},
			want: "ioang hunts a/the person",
		},
		{
			name: "pronoun copula",
			tree: &VerbClause{Verb: lu(2), Class: VerbCopula, Subjective: mkNoun(oe(1, "", "oe"), NounSubjective), Predicate: lor(3)},
			want: "I am beautiful",
		},
		{
			name: "negated copula",
			tree: &VerbClause{Verb: lu(2), Class: VerbCopula, Subjective: mkNoun(ioang(1, "", "ioang"), NounSubjective), Predicate: lor(4), Negation: ke(3)},
			want: "ioang is not beautiful",
		},
		{
			name: "genitive predicate",
			tree: &VerbClause{Verb: lu(2), Class: VerbCopula, Subjective: mkNoun(ioang(1, "", "ioang"), NounSubjective), Predicate: mkNoun(oe(3, "ä", "oeyä"), NounGenitive)},
			want: "ioang is my",
		},
		{
			name: "pronoun subject keeps third person",
			tree: intransitive(tul(2), mkNoun(oe(1, "", "oe"), NounSubjective)),
			want: "I runs",
		},
		{
			name: "negation after pronoun",
			tree: &VerbClause{Verb: tul(3), Class: VerbIntransitive, Subjective: mkNoun(oe(1, "", "oe"), NounSubjective), Negation: ke(2)},
			want: "I does not run",
		},
		{
			name: "negation after noun",
			tree: &VerbClause{Verb: tul(3), Class: VerbIntransitive, Subjective: mkNoun(ioang(1, "", "ioang"), NounSubjective), Negation: ke(2)},
			want: "ioang does not run",
		},
		{
			name: "negated modal",
			tree: &VerbClause{Verb: mkTok(3, "tsun", tsun), Class: VerbModal, Subjective: mkNoun(oe(1, "", "oe"), NounSubjective), Negation: ke(2)},
			want: "I can not",
		},
		{
			name: "si verb",
			tree: &VerbClause{Verb: si, Class: VerbSi, Subjective: mkNoun(oe(1, "", "oe"), NounSubjective), Complement: mkNoun(uvan, SiComplement)},
			want: "I plays",
		},
		{
			name: "missing subject",
			tree: intransitive(tul(1), nil),
			want: "it runs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.tree))
		})
	}
}

func TestTranslatePossessives(t *testing.T) {
	// tul tute oeyä
	person := mkNoun(tute(2, "", "tute"), NounSubjective)
	person.Possessives = []*NounClause{mkNoun(oe(3, "ä", "oeyä"), NounGenitive)}
	assert.Equal(t, "my person runs", Translate(intransitive(tul(1), person)))

	// tul tute ioangä
	person = mkNoun(tute(2, "", "tute"), NounSubjective)
	person.Possessives = []*NounClause{mkNoun(ioang(3, "ä", "ioangä"), NounGenitive)}
	assert.Equal(t, "ioang's person runs", Translate(intransitive(tul(1), person)))

	// tul ioang lora tuteyä
	owner := mkNoun(tute(4, "ä", "tuteyä"), NounGenitive)
	owner.Adjectives = []*AdjectivePhrase{{
		Adjective: mkTok(3, "lora", attached(reading("lor", POSAdjective, "beautiful"), AttachPrenoun)),
		Class:     AdjectiveLeft,
	}}
	name := mkNoun(ioang(2, "", "ioang"), NounSubjective)
	name.Possessives = []*NounClause{owner}
	assert.Equal(t, "ioang of a/the beautiful person runs", Translate(intransitive(tul(1), name)))
}

func TestTranslateSubclause(t *testing.T) {
	// tute a tul lu lor
	person := mkNoun(tute(1, "", "tute"), NounSubjective)
	person.Subclauses = []ParseTree{intransitive(tul(3), nil)}
	tree := &VerbClause{
		Verb:       lu(4),
		Class:      VerbCopula,
		Subjective: person,
		Predicate: &AdjectivePhrase{
			Adjective: mkTok(5, "lor", attached(reading("lor", POSAdjective, "beautiful"), AttachPredicative)),
			Class:     Adjective,
		},
	}
	assert.Equal(t, "a/the person [ that it runs ] is beautiful", Translate(tree))
}

func TestTranslateAdverbials(t *testing.T) {
	mi := mkTok(2, "mì", reading("mì", POSAdposition, "in"))
	sray := mkTok(3, "sray", cased(reading("sray", POSNoun, "house"), ""))
	srayftu := cased(reading("sray", POSNoun, "house"), "ftu")
	srayftu.SuffixGloss = "from"

	v := intransitive(tul(1), mkNoun(ioang(5, "", "ioang"), NounSubjective))
	v.Adverbials = []*AdverbialPhrase{
		{Word: mi, Class: Adposition, Object: mkNoun(sray, NounSubjective)},
		{Word: mkTok(4, "srayftu", srayftu), Class: NounAdposition},
	}
	v.Datives = []*NounClause{mkNoun(tute(6, "r", "tuter"), NounDative)}
	v.Topicals = []*NounClause{mkNoun(tute(7, "ri", "tuteri"), NounTopical)}
	voc := mkNoun(tute(9, "", "tute"), NounSubjective)
	voc.Marker = mkTok(8, "ma", reading("ma", POSParticle, "O"))
	v.Vocatives = []*NounClause{voc}

	want := "ioang runs in a/the house from a/the house to a/the person as for a/the person O a/the person"
	assert.Equal(t, want, Translate(v))
}

type shouting struct{}

func (shouting) Conjugate(verb string, f inflect.Form) string {
	return strings.ToUpper(inflect.Conjugate(verb, f))
}

func TestTranslatorInflector(t *testing.T) {
	tr := Translator{Inflector: shouting{}}
	got := tr.Translate(intransitive(tul(2), mkNoun(ioang(1, "", "ioang"), NounSubjective)))
	assert.Equal(t, "ioang RUNS", got)
	assert.Empty(t, tr.Translate(nil))
}
