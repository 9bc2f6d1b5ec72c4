package grammar

import (
	"fmt"

	"github.com/cours-de-latin/tslamyu"
)

const (
	// violationPenalty is charged for every rule a derivation breaks.
	violationPenalty = 10
	// Readings that are grammatical but unlikely cost a little.
	copulaWithoutPredicate  = 1
	predicateWithoutSubject = 2
)

// score checks a complete derivation.
func score(t tslamyu.ParseTree) tslamyu.ParseResult {
	c := &checker{}
	if _, ok := t.(*tslamyu.VerbClause); !ok {
		c.violate("Sentence has no verb")
	}
	c.walk(t)
	return tslamyu.ParseResult{
		Tree:       t,
		Penalty:    c.penalty,
		Violations: c.violations,
	}
}

type checker struct {
	violations []string
	penalty    int
}

func (c *checker) violate(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
	c.penalty += violationPenalty
}

func (c *checker) walk(t tslamyu.ParseTree) {
	if v, ok := t.(*tslamyu.VerbClause); ok {
		c.verb(v)
	}
	for _, a := range t.Arguments() {
		c.walk(a.Tree)
	}
}

func (c *checker) verb(v *tslamyu.VerbClause) {
	word := v.Verb.Value
	transitive := v.Class == tslamyu.VerbTransitive

	if !transitive {
		if v.Agentive != nil {
			c.violate("Verb [%s] is not transitive and cannot take an agentive [%s]", word, v.Agentive.Noun.Value)
		}
		if v.Patientive != nil {
			c.violate("Verb [%s] is not transitive and cannot take a patientive [%s]", word, v.Patientive.Noun.Value)
		}
	} else if v.Subjective != nil && (v.Agentive != nil || v.Patientive != nil) {
		c.violate("Transitive verb [%s] cannot take a subjective [%s] together with an agentive or patientive", word, v.Subjective.Noun.Value)
	}

	if v.Predicate != nil {
		if v.Class != tslamyu.VerbCopula {
			c.violate("Verb [%s] is not a copula and cannot take a predicate [%s]", word, v.Predicate.Head().Value)
		}
		if cat := v.Predicate.Category(); cat == tslamyu.AdjectiveLeft || cat == tslamyu.AdjectiveRight {
			c.violate("Adjective [%s] is in attributive form and cannot be a predicate", v.Predicate.Head().Value)
		}
	}
	if v.Complement != nil && v.Class != tslamyu.VerbSi {
		c.violate("Verb [%s] cannot take the complement [%s]", word, v.Complement.Noun.Value)
	}
	for _, s := range v.Surplus {
		c.violate("Verb [%s] has more than one %s: [%s] and [%s]", word, s.Role, slotHead(v, s.Role), s.Tree.Head().Value)
	}

	if v.Class == tslamyu.VerbCopula {
		switch {
		case v.Subjective != nil && v.Predicate == nil && len(v.Datives) == 0:
			c.penalty += copulaWithoutPredicate
		case v.Subjective == nil && v.Predicate != nil:
			c.penalty += predicateWithoutSubject
		}
	}
}

// slotHead names the word already holding role in v.
func slotHead(v *tslamyu.VerbClause, role tslamyu.Role) string {
	switch {
	case role == tslamyu.RoleSubjective && v.Subjective != nil:
		return v.Subjective.Noun.Value
	case role == tslamyu.RoleAgentive && v.Agentive != nil:
		return v.Agentive.Noun.Value
	case role == tslamyu.RolePatientive && v.Patientive != nil:
		return v.Patientive.Noun.Value
	case role == tslamyu.RolePredicate && v.Predicate != nil:
		return v.Predicate.Head().Value
	case role == tslamyu.RoleComplement && v.Complement != nil:
		return v.Complement.Noun.Value
	}
	return ""
}
