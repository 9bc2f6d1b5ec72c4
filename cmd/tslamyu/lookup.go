package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/tslamyu"
)

func (c *cli) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup word...",
		Short: "Show the dictionary readings of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := c.app.Analyzer.LookupWords(cmd.Context(), args)
			if ferr := lookupFailure(err); ferr != nil {
				return ferr
			}
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(c.out, c.styles.heading(w.Surface))
				if len(w.Analyses) == 0 {
					fmt.Fprintln(c.out, "  not recognized")
					continue
				}
				for _, a := range w.Analyses {
					fmt.Fprintln(c.out, "  "+describe(a))
				}
			}
			return nil
		},
	}
}

// describe renders one reading as "headword (type) -case [categories] -> gloss".
func describe(a tslamyu.LexicalAnalysis) string {
	var b strings.Builder
	b.WriteString(a.Headword)
	fmt.Fprintf(&b, " (%s)", a.PartOfSpeech)
	if affix := a.CaseAffix(); affix != "" {
		b.WriteString(" -" + affix)
	}
	if a.Attachment != tslamyu.AttachNone {
		b.WriteString(" " + string(a.Attachment))
	}
	b.WriteString(" " + tslamyu.Classify(a).String())
	b.WriteString(" -> " + tslamyu.ShortestGloss(a))
	return b.String()
}
