package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// scanLines calls fn for every line of r that is neither blank nor a "!"
// comment. Errors from fn are tagged with the line number.
func scanLines(r io.Reader, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// loadWords reads words.nv into d.entries.
func (d *Dictionary) loadWords(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "words.nv"))
	if err != nil {
		return fmt.Errorf("open words.nv: %w", err)
	}
	defer f.Close()

	err = scanLines(f, func(line string) error {
		e, err := parseEntry(line)
		if err != nil {
			return err
		}
		d.addEntry(e)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read words.nv: %w", err)
	}
	return nil
}

// loadEndings reads endings.nv into d.endings.
func (d *Dictionary) loadEndings(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "endings.nv"))
	if err != nil {
		return fmt.Errorf("open endings.nv: %w", err)
	}
	defer f.Close()

	err = scanLines(f, func(line string) error {
		e, err := parseEnding(line)
		if err != nil {
			return err
		}
		d.endings[e.Text] = append(d.endings[e.Text], e)
		d.endingList = append(d.endingList, e)
		d.cases = appendCase(d.cases, e)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read endings.nv: %w", err)
	}
	return nil
}

// appendCase records the case of e in first-seen order.
func appendCase(cases []caseInfo, e *Ending) []caseInfo {
	for _, c := range cases {
		if c.name == e.Case {
			return cases
		}
	}
	return append(cases, caseInfo{name: e.Case, affix: e.Affix})
}
