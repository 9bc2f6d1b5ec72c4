// Package app wires configuration into a ready analyzer.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cours-de-latin/tslamyu"
	"github.com/cours-de-latin/tslamyu/grammar"
	"github.com/cours-de-latin/tslamyu/internal/config"
	"github.com/cours-de-latin/tslamyu/lexicon"
)

// App holds the components built from a configuration.
type App struct {
	Analyzer *tslamyu.Analyzer
	Lookup   tslamyu.Lookup
	// Dictionary is nil when words are looked up over HTTP.
	Dictionary *lexicon.Dictionary
	Logger     *zap.Logger
}

// Build loads the lexicon named by cfg and returns the wired components.
func Build(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{Logger: logger}

	switch cfg.Lexicon.Source {
	case config.SourceHTTP:
		a.Lookup = lexicon.NewClient(cfg.Lexicon.URL, cfg.GetLexiconTimeout(),
			lexicon.WithClientLogger(logger.Named("fwew")))
		logger.Info("using remote lexicon", zap.String("url", cfg.Lexicon.URL))
	default:
		dict, err := lexicon.New(cfg.Lexicon.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		a.Dictionary = dict
		a.Lookup = dict
		logger.Info("lexicon loaded", zap.String("dir", cfg.Lexicon.DataDir), zap.Int("headwords", dict.Len()))
	}

	opts := cfg.Options()
	opts.Logger = logger
	a.Analyzer = tslamyu.New(a.Lookup, grammar.New(grammar.WithLogger(logger.Named("grammar"))), opts)
	return a, nil
}
