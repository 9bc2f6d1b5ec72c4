package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/tslamyu"
	"github.com/cours-de-latin/tslamyu/internal/app"
	"github.com/cours-de-latin/tslamyu/internal/config"
	"github.com/cours-de-latin/tslamyu/internal/logging"
)

// cli holds the state shared by the commands of one invocation.
type cli struct {
	in  io.Reader
	out io.Writer

	configPath string
	verbose    bool
	notes      bool
	dataDir    string
	remote     string
	logLevel   string
	noColor    bool

	app    *app.App
	styles styles
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{in: in, out: out}
	root := &cobra.Command{
		Use:   "tslamyu",
		Short: "Na'vi sentence analyzer",
		Long: `tslamyu looks up every word of a Na'vi sentence, finds each way the
grammar can combine them, ranks the readings and glosses the best ones in
English.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() || cmd.Name() == "help" {
				return nil
			}
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.app != nil {
				_ = c.app.Logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(in)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "tslamyu.yaml", "Configuration file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Show every parse tree with its penalty")
	flags.BoolVar(&c.notes, "notes", false, "Report word types the classifier does not handle")
	flags.StringVar(&c.dataDir, "data", "", "Dictionary data directory (overrides config)")
	flags.StringVar(&c.remote, "remote", "", "Look words up on a Reykunyu server at this URL")
	flags.StringVar(&c.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(c.parseCmd(), c.lookupCmd(), c.declineCmd())
	return root
}

// setup loads the configuration and builds the analyzer.
func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}
	if c.dataDir != "" {
		cfg.Lexicon.DataDir = c.dataDir
		cfg.Lexicon.Source = config.SourceFile
	}
	if c.remote != "" {
		cfg.Lexicon.URL = c.remote
		cfg.Lexicon.Source = config.SourceHTTP
	}
	cfg.Output.Verbose = cfg.Output.Verbose || c.verbose
	cfg.Output.DeveloperNotes = cfg.Output.DeveloperNotes || c.notes
	cfg.Logging.Level = c.logLevel
	cfg.Logging.Format = "console"
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}
	c.app, err = app.Build(cfg, logger)
	if err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}
	c.styles = newStyles(c.out, c.noColor)
	return nil
}

// lookupFailure converts a failed lookup to an exit error, or returns nil.
func lookupFailure(err error) error {
	var lerr *tslamyu.LookupError
	if errors.As(err, &lerr) {
		return &ExitError{Code: exitLookup, Message: fmt.Sprintf("dictionary lookup failed: %v", lerr)}
	}
	return nil
}
