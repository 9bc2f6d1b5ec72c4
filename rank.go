package tslamyu

import (
	"slices"
	"strings"
)

// Rank returns the forest ordered by ascending penalty. Results with equal
// penalties keep their retrieval order. The input is left untouched.
func Rank(forest []ParseResult) []ParseResult {
	ranked := slices.Clone(forest)
	slices.SortStableFunc(ranked, func(a, b ParseResult) int {
		return a.Penalty - b.Penalty
	})
	return ranked
}

// WellFormed reports whether the best result of a ranked forest carries no
// violation.
func WellFormed(ranked []ParseResult) bool {
	return len(ranked) > 0 && len(ranked[0].Violations) == 0
}

// Selection is what a front end shows for a ranked forest.
type Selection struct {
	// Primary holds every result tied with the lowest penalty, in rank order.
	Primary []ParseResult
	// Suppressed holds the remaining results, for verbose output.
	Suppressed []ParseResult
	// Translations of the Primary results, each distinct text once.
	Translations []string
	// Violations of the Primary results, in order.
	Violations []string
}

// Select splits a ranked forest into the results worth showing and the rest,
// translating the shown ones with translate.
func Select(ranked []ParseResult, translate func(ParseTree) string) Selection {
	var sel Selection
	if len(ranked) == 0 {
		return sel
	}
	best := ranked[0].Penalty
	seen := make(map[string]bool)
	for i, r := range ranked {
		if r.Penalty != best {
			sel.Suppressed = ranked[i:]
			break
		}
		sel.Primary = append(sel.Primary, r)
		sel.Violations = append(sel.Violations, r.Violations...)
		text := strings.TrimSpace(translate(r.Tree))
		if text != "" && !seen[text] {
			seen[text] = true
			sel.Translations = append(sel.Translations, text)
		}
	}
	return sel
}
