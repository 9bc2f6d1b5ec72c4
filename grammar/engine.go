// Package grammar is the default Na'vi grammar engine. It builds every
// derivation of a token stream bottom-up over adjacent spans, so word order
// is free, and then scores each complete derivation against the valence and
// agreement rules of the language.
package grammar

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/cours-de-latin/tslamyu"
)

// Engine implements tslamyu.Engine. It keeps no state between calls.
type Engine struct {
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger makes the engine report chart statistics to l.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Parse returns every complete derivation of tokens with its penalty and
// violations. It fails with a *tslamyu.ParseError when no derivation spans
// the whole input or a bound in limits is exceeded, and with ctx.Err() when
// ctx ends first.
func (e *Engine) Parse(ctx context.Context, tokens []tslamyu.Token, limits tslamyu.Limits) ([]tslamyu.ParseResult, error) {
	n := len(tokens)
	if n == 0 {
		return nil, nil
	}
	toks := slices.Clone(tokens)
	c := newChart(n)
	for i := range toks {
		for _, it := range leafItems(&toks[i]) {
			c.add(i, i+1, it)
		}
	}
	built := c.size()

	for length := 2; length <= n; length++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i+length <= n; i++ {
			j := i + length
			for k := i + 1; k < j; k++ {
				for _, l := range c.at(i, k) {
					for _, r := range c.at(k, j) {
						for _, it := range combine(l, r) {
							if c.add(i, j, it) {
								built++
							}
						}
					}
				}
			}
			if limits.MaxChartItems > 0 && built > limits.MaxChartItems {
				e.logger.Warn("chart over limit", zap.Int("items", built), zap.Int("limit", limits.MaxChartItems))
				return nil, tslamyu.NewParseError(&toks[j-1], tslamyu.ErrTooAmbiguous)
			}
		}
	}

	var forest []tslamyu.ParseResult
	for _, it := range c.at(0, n) {
		if !it.isTree() {
			continue
		}
		forest = append(forest, score(it.tree))
		if limits.MaxTrees > 0 && len(forest) > limits.MaxTrees {
			return nil, tslamyu.NewParseError(&toks[n-1], tslamyu.ErrTooAmbiguous)
		}
	}
	e.logger.Debug("chart built", zap.Int("tokens", n), zap.Int("items", built), zap.Int("trees", len(forest)))
	if len(forest) == 0 {
		return nil, tslamyu.NewParseError(&toks[c.stuckAt()], tslamyu.ErrNoDerivation)
	}
	return forest, nil
}

// chart holds the items built for each span [i, j) of the input.
type chart struct {
	n     int
	cells [][]cell
}

type cell struct {
	items []*item
	seen  map[string]bool
}

func newChart(n int) *chart {
	c := &chart{n: n, cells: make([][]cell, n+1)}
	for i := range c.cells {
		c.cells[i] = make([]cell, n+1)
	}
	return c
}

// add stores it over [i, j) unless an identical item is already there.
func (c *chart) add(i, j int, it *item) bool {
	cl := &c.cells[i][j]
	if cl.seen == nil {
		cl.seen = make(map[string]bool)
	}
	if cl.seen[it.sig] {
		return false
	}
	cl.seen[it.sig] = true
	cl.items = append(cl.items, it)
	return true
}

func (c *chart) at(i, j int) []*item { return c.cells[i][j].items }

func (c *chart) size() int {
	total := 0
	for i := range c.cells {
		for j := range c.cells[i] {
			total += len(c.cells[i][j].items)
		}
	}
	return total
}

// stuckAt returns the index of the first token that no constituent starting
// at the beginning of the sentence could absorb.
func (c *chart) stuckAt() int {
	for j := c.n; j > 0; j-- {
		if len(c.at(0, j)) > 0 {
			if j == c.n {
				return 0
			}
			return j
		}
	}
	return 0
}
