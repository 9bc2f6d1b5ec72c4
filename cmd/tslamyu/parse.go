package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/tslamyu"
)

const separator = "───────────────────────────────────────────────────"

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [sentence]",
		Short: "Analyze a sentence and gloss it in English",
		Long: `Analyze a sentence given as arguments. Without arguments, every
non-empty line of standard input is analyzed as its own sentence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return c.parseOne(cmd.Context(), strings.Join(args, " "))
			}
			return c.parseLines(cmd.Context())
		},
	}
}

func (c *cli) parseOne(ctx context.Context, sentence string) error {
	rep, err := c.app.Analyzer.Analyze(ctx, sentence)
	if ferr := lookupFailure(err); ferr != nil {
		return ferr
	}
	if !c.printReport(rep, err) {
		return &ExitError{Code: exitRejected}
	}
	return nil
}

func (c *cli) parseLines(ctx context.Context) error {
	var sentences []string
	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			sentences = append(sentences, line)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read sentences: %w", err)
	}
	if len(sentences) == 0 {
		return &ExitError{Code: exitUsage, Message: "no sentence given"}
	}

	outcomes, err := c.app.Analyzer.AnalyzeBatch(ctx, sentences)
	if err != nil {
		return err
	}
	allAccepted := true
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(c.out)
		}
		fmt.Fprintln(c.out, c.styles.heading("> "+o.Sentence))
		if ferr := lookupFailure(o.Err); ferr != nil {
			c.printError(ferr.Error())
			allAccepted = false
			continue
		}
		if !c.printReport(o.Report, o.Err) {
			allAccepted = false
		}
	}
	if !allAccepted {
		return &ExitError{Code: exitRejected}
	}
	return nil
}

// printReport writes the analysis of one sentence and reports whether it
// was accepted as correct.
func (c *cli) printReport(rep *tslamyu.Report, err error) bool {
	w := c.out
	verbose := c.app.Analyzer.Options().Verbose
	if rep != nil {
		for _, msg := range rep.LexingErrors() {
			fmt.Fprintln(w, "Warning: "+msg)
		}
		for _, note := range rep.Diagnostics.Notes {
			fmt.Fprintln(w, "Note: "+note)
		}
		if verbose {
			c.printInput(rep.Tokens)
		}
	}

	var perr *tslamyu.ParseError
	if errors.As(err, &perr) {
		c.printError(perr.Error())
		return false
	}
	if err != nil {
		c.printError(err.Error())
		return false
	}

	if verbose {
		fmt.Fprintf(w, "%s %d possible parse tree(s) found\n", c.styles.heading("Parse results:"), len(rep.Results))
		for _, r := range rep.Results {
			fmt.Fprintln(w, separator)
			printLines(w, tslamyu.RenderTree(tslamyu.Project(r), c.styles.tree()))
			fmt.Fprintf(w, "(penalty: %d)\n", r.Penalty)
			for _, v := range r.Violations {
				c.printError(v)
			}
			fmt.Fprintf(w, " -> %q\n", c.app.Analyzer.Translate(r.Tree))
		}
		if len(rep.Results) > 0 {
			fmt.Fprintln(w, separator)
		}
		return rep.WellFormed
	}

	for _, v := range rep.Selection.Violations {
		c.printError(v)
	}
	if rep.WellFormed {
		for _, t := range rep.Selection.Translations {
			fmt.Fprintf(w, " -> %q\n", t)
		}
	}
	return rep.WellFormed
}

func (c *cli) printInput(tokens []tslamyu.Token) {
	fmt.Fprintln(c.out, c.styles.heading("Input:"))
	for _, t := range tokens {
		names := make([]string, 0, t.Categories.Len())
		for _, cat := range t.Categories.Slice() {
			names = append(names, cat.String())
		}
		fmt.Fprintf(c.out, "%s (%s)\n", c.styles.label(t.Value), strings.Join(names, ", "))
	}
	fmt.Fprintln(c.out)
}

func (c *cli) printError(msg string) {
	fmt.Fprintln(c.out, c.styles.err("Error:")+" "+msg)
}

func printLines(w io.Writer, lines iter.Seq[string]) {
	for line := range lines {
		fmt.Fprintln(w, line)
	}
}
