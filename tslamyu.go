// Package tslamyu analyzes Na'vi sentences. It classifies the readings a
// dictionary gives for each word, asks a grammar engine for every derivation
// of the sentence, ranks them and glosses the best ones in English.
package tslamyu

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Lookup returns every reading of a word form. An empty result means the
// word is unknown; an error means the service could not answer.
type Lookup interface {
	Lookup(ctx context.Context, word string) ([]LexicalAnalysis, error)
}

// LookupError reports a failed dictionary lookup. It aborts the sentence.
type LookupError struct {
	Word string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %q: %v", e.Word, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Report is the outcome of analyzing one sentence.
type Report struct {
	Words       []Word
	Tokens      []Token
	Diagnostics Diagnostics
	// Results is the ranked forest: every tree in verbose mode, otherwise
	// only the best-penalty ones.
	Results    []ParseResult
	WellFormed bool
	Selection  Selection
}

// LexingErrors returns the user-facing lexing messages.
func (r *Report) LexingErrors() []string {
	return r.Diagnostics.Messages()
}

// Analyzer wires a dictionary and a grammar engine into the full pipeline.
// It holds no per-sentence state and is safe for concurrent use.
type Analyzer struct {
	lookup     Lookup
	engine     Engine
	translator Translator
	opts       Options
}

// New returns an Analyzer. Zero bounds in opts fall back to the defaults.
func New(lookup Lookup, engine Engine, opts Options) *Analyzer {
	return &Analyzer{lookup: lookup, engine: engine, opts: opts}
}

// WithInflector returns a copy of a that conjugates verbs with inf.
func (a *Analyzer) WithInflector(inf Inflector) *Analyzer {
	cp := *a
	cp.translator = Translator{Inflector: inf}
	return &cp
}

// WithVerbose returns a copy of a whose reports keep every ranked result
// when v is set.
func (a *Analyzer) WithVerbose(v bool) *Analyzer {
	cp := *a
	cp.opts.Verbose = v
	return &cp
}

// Options returns the configuration a was built with.
func (a *Analyzer) Options() Options { return a.opts }

// Translate renders t with the analyzer's inflector.
func (a *Analyzer) Translate(t ParseTree) string { return a.translator.Translate(t) }

// LookupWords fetches the readings of every word, in order. The first
// failure aborts with a *LookupError.
func (a *Analyzer) LookupWords(ctx context.Context, words []string) ([]Word, error) {
	out := make([]Word, 0, len(words))
	for i, w := range words {
		analyses, err := a.lookup.Lookup(ctx, w)
		if err != nil {
			a.opts.logger().Error("lookup failed", zap.String("word", w), zap.Error(err))
			return nil, &LookupError{Word: w, Err: err}
		}
		out = append(out, Word{Surface: w, Position: i + 1, Analyses: analyses})
	}
	return out, nil
}

// ProcessSentence runs lexing, parsing, ranking and translation over words
// that were already looked up. On a *ParseError the returned report still
// carries the lexing diagnostics.
func (a *Analyzer) ProcessSentence(ctx context.Context, words []Word) (*Report, error) {
	tokens, diag := Lex(words, a.opts)
	rep := &Report{Words: words, Tokens: tokens, Diagnostics: diag}

	forest, err := Parse(ctx, a.engine, tokens, a.opts)
	if err != nil {
		return rep, err
	}
	ranked := Rank(forest)
	rep.WellFormed = WellFormed(ranked)
	rep.Selection = Select(ranked, a.translator.Translate)
	if a.opts.Verbose {
		rep.Results = ranked
	} else {
		rep.Results = rep.Selection.Primary
	}
	return rep, nil
}

// Analyze splits sentence into words, looks them up and processes them.
func (a *Analyzer) Analyze(ctx context.Context, sentence string) (*Report, error) {
	words, err := a.LookupWords(ctx, SplitWords(sentence))
	if err != nil {
		return nil, err
	}
	return a.ProcessSentence(ctx, words)
}

// Outcome pairs a sentence with its report or the error that stopped it.
type Outcome struct {
	Sentence string
	Report   *Report
	Err      error
}

// AnalyzeBatch analyzes independent sentences in parallel. A failing
// sentence does not stop the others; only cancellation of ctx does.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, sentences []string) ([]Outcome, error) {
	out := make([]Outcome, len(sentences))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.workers())
	for i, s := range sentences {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := a.Analyze(gctx, s)
			out[i] = Outcome{Sentence: s, Report: rep, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
