package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) declineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decline noun",
		Short: "Print the case forms of a noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.app.Dictionary == nil {
				return &ExitError{Code: exitUsage, Message: "decline needs the local dictionary; drop --remote"}
			}
			table := c.app.Dictionary.Declension(args[0])
			if table == nil {
				return &ExitError{Code: exitRejected, Message: fmt.Sprintf("noun %q not found", args[0])}
			}
			fmt.Fprintf(c.out, "%s (%s)\n", c.styles.heading(table.Entry.Headword), table.Entry.POS)
			width := 0
			for _, name := range table.Cases {
				width = max(width, len(name))
			}
			for _, name := range table.Cases {
				fmt.Fprintf(c.out, "  %-*s  %s\n", width, name, strings.Join(table.Forms[name], ", "))
			}
			return nil
		},
	}
}
