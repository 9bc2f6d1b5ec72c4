package lexicon

// Declension lists the case forms of a noun.
type Declension struct {
	Entry *Entry
	// Cases holds the case names in table order, subjective first.
	Cases []string
	// Forms maps a case name to its spellings.
	Forms map[string][]string
}

// Declension builds the case table of the nominal entry spelled word. It
// returns nil when there is none.
func (d *Dictionary) Declension(word string) *Declension {
	var e *Entry
	for _, cand := range d.Entries(word) {
		if cand.POS.IsNominal() {
			e = cand
			break
		}
	}
	if e == nil {
		return nil
	}

	table := &Declension{
		Entry: e,
		Cases: []string{"subjective"},
		Forms: map[string][]string{"subjective": {e.Headword}},
	}
	for _, c := range d.cases {
		forms := d.caseForms(e, c.name)
		if len(forms) > 0 {
			table.Cases = append(table.Cases, c.name)
			table.Forms[c.name] = forms
		}
	}
	return table
}

// caseForms returns every spelling of e in case name, in file order.
func (d *Dictionary) caseForms(e *Entry, name string) []string {
	var forms []string
	for _, end := range d.endingList {
		if end.Case == name && end.fits(e.Key) {
			forms = append(forms, e.Headword+end.Text)
		}
	}
	return unique(forms)
}

// unique returns ss without repeats, preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
