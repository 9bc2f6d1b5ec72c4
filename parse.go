package tslamyu

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ParseResult is one complete derivation of a sentence.
type ParseResult struct {
	Tree ParseTree
	// Penalty is zero for a fully grammatical reading and grows with each
	// problem the engine found.
	Penalty int
	// Violations describe those problems for the user.
	Violations []string
}

// Engine retrieves every derivation of a token stream. Implementations must
// be safe for concurrent use and must not retain the tokens.
type Engine interface {
	Parse(ctx context.Context, tokens []Token, limits Limits) ([]ParseResult, error)
}

var (
	// ErrNoDerivation: no derivation covers the whole sentence.
	ErrNoDerivation = errors.New("no derivation")
	// ErrTooAmbiguous: the sentence exceeds the configured forest bounds.
	ErrTooAmbiguous = errors.New("too many derivations")
	// ErrParseTimeout: the engine ran past its deadline.
	ErrParseTimeout = errors.New("parse timed out")
)

// ParseError reports a sentence the grammar cannot accept. Word and Position
// point at the token where the parse stopped.
type ParseError struct {
	Word     string
	Position int
	Reason   error
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrTooAmbiguous):
		return fmt.Sprintf("Parse abandoned at [%s] (word %d): too many readings", e.Word, e.Position)
	case errors.Is(e.Reason, ErrParseTimeout):
		return fmt.Sprintf("Parse abandoned at [%s] (word %d): timed out", e.Word, e.Position)
	}
	return fmt.Sprintf("Parse failed at [%s] (word %d)", e.Word, e.Position)
}

func (e *ParseError) Unwrap() error { return e.Reason }

// NewParseError builds a ParseError pointing at tok.
func NewParseError(tok *Token, reason error) *ParseError {
	if tok == nil {
		return &ParseError{Reason: reason}
	}
	return &ParseError{Word: tok.Value, Position: tok.Position, Reason: reason}
}

// Parse feeds tokens to engine and returns the whole forest. A sentence with
// no tokens yields an empty forest. Any rejection, including an exceeded
// bound, is reported as a *ParseError; other errors come from ctx.
func Parse(ctx context.Context, engine Engine, tokens []Token, opts Options) ([]ParseResult, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if opts.ParseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ParseTimeout)
		defer cancel()
	}
	limits := opts.limits()
	forest, err := engine.Parse(ctx, tokens, limits)
	if err != nil {
		var perr *ParseError
		switch {
		case errors.As(err, &perr):
			return nil, perr
		case errors.Is(err, context.DeadlineExceeded):
			opts.logger().Warn("parse timed out", zap.Int("tokens", len(tokens)), zap.Duration("timeout", opts.ParseTimeout))
			return nil, NewParseError(&tokens[len(tokens)-1], ErrParseTimeout)
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(forest) > limits.MaxTrees {
		opts.logger().Warn("parse forest over limit", zap.Int("trees", len(forest)), zap.Int("limit", limits.MaxTrees))
		return nil, NewParseError(&tokens[len(tokens)-1], ErrTooAmbiguous)
	}
	if len(forest) == 0 {
		return nil, NewParseError(&tokens[0], ErrNoDerivation)
	}
	opts.logger().Debug("parsed", zap.Int("tokens", len(tokens)), zap.Int("trees", len(forest)))
	return forest, nil
}
