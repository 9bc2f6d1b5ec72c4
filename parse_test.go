package tslamyu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engineFunc adapts a function to Engine.
type engineFunc func(ctx context.Context, tokens []Token, limits Limits) ([]ParseResult, error)

func (f engineFunc) Parse(ctx context.Context, tokens []Token, limits Limits) ([]ParseResult, error) {
	return f(ctx, tokens, limits)
}

func sampleTokens() []Token {
	return []Token{*ioang(1, "", "ioang"), *tul(3)}
}

func TestParseNoTokens(t *testing.T) {
	called := false
	engine := engineFunc(func(context.Context, []Token, Limits) ([]ParseResult, error) {
		called = true
		return nil, nil
	})
	forest, err := Parse(context.Background(), engine, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.False(t, called)
}

func TestParseDefaultsLimits(t *testing.T) {
	var got Limits
	engine := engineFunc(func(_ context.Context, _ []Token, l Limits) ([]ParseResult, error) {
		got = l
		return results(0), nil
	})
	_, err := Parse(context.Background(), engine, sampleTokens(), Options{})
	require.NoError(t, err)
	assert.Equal(t, Limits{MaxTrees: DefaultMaxTrees, MaxChartItems: DefaultMaxChartItems}, got)
}

func TestParseEmptyForest(t *testing.T) {
	engine := engineFunc(func(context.Context, []Token, Limits) ([]ParseResult, error) { return nil, nil })
	_, err := Parse(context.Background(), engine, sampleTokens(), Options{})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "ioang", perr.Word)
	assert.ErrorIs(t, err, ErrNoDerivation)
}

func TestParseTooManyTrees(t *testing.T) {
	engine := engineFunc(func(context.Context, []Token, Limits) ([]ParseResult, error) {
		return results(0, 0, 0), nil
	})
	_, err := Parse(context.Background(), engine, sampleTokens(), Options{MaxTrees: 2})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrTooAmbiguous)
	assert.Equal(t, 3, perr.Position)
	assert.Equal(t, "Parse abandoned at [tul] (word 3): too many readings", err.Error())
}

func TestParseTimeout(t *testing.T) {
	engine := engineFunc(func(ctx context.Context, _ []Token, _ Limits) ([]ParseResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	_, err := Parse(context.Background(), engine, sampleTokens(), Options{ParseTimeout: 10 * time.Millisecond})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrParseTimeout)
	assert.Contains(t, err.Error(), "timed out")
}

func TestParseEngineErrors(t *testing.T) {
	rejected := NewParseError(&Token{Value: "tul", Position: 2}, ErrNoDerivation)
	engine := engineFunc(func(context.Context, []Token, Limits) ([]ParseResult, error) { return nil, rejected })
	_, err := Parse(context.Background(), engine, sampleTokens(), Options{})
	assert.Same(t, rejected, err)

	boom := errors.New("boom")
	engine = engineFunc(func(context.Context, []Token, Limits) ([]ParseResult, error) { return nil, boom })
	_, err = Parse(context.Background(), engine, sampleTokens(), Options{})
	assert.ErrorIs(t, err, boom)
	var perr *ParseError
	assert.False(t, errors.As(err, &perr))
}

func TestNewParseErrorNilToken(t *testing.T) {
	err := NewParseError(nil, ErrNoDerivation)
	assert.Empty(t, err.Word)
	assert.ErrorIs(t, err, ErrNoDerivation)
}
