package tslamyu

import (
	"time"

	"go.uber.org/zap"
)

// Options is the configuration threaded through every stage of the
// pipeline. The zero value is usable; DefaultOptions fills in the bounds.
type Options struct {
	// Verbose keeps every ranked result in reports instead of only the
	// best-penalty ones.
	Verbose bool
	// DeveloperNotes records classification gaps in Diagnostics.Notes.
	DeveloperNotes bool
	// MaxTrees caps the size of a parse forest. Zero means DefaultMaxTrees.
	MaxTrees int
	// MaxChartItems caps the partial trees the engine may build for one
	// sentence. Zero means DefaultMaxChartItems.
	MaxChartItems int
	// ParseTimeout bounds the grammar engine. Zero disables the bound.
	ParseTimeout time.Duration
	// Workers bounds the sentences processed at once by AnalyzeBatch.
	Workers int
	// Logger receives diagnostics; nil discards them.
	Logger *zap.Logger
}

const (
	DefaultMaxTrees      = 256
	DefaultMaxChartItems = 20000
	DefaultParseTimeout  = 2 * time.Second
	DefaultWorkers       = 4
)

// DefaultOptions returns Options with every bound set.
func DefaultOptions() Options {
	return Options{
		MaxTrees:      DefaultMaxTrees,
		MaxChartItems: DefaultMaxChartItems,
		ParseTimeout:  DefaultParseTimeout,
		Workers:       DefaultWorkers,
	}
}

// Limits are the bounds a grammar engine must honour.
type Limits struct {
	MaxTrees      int
	MaxChartItems int
}

func (o Options) limits() Limits {
	l := Limits{MaxTrees: o.MaxTrees, MaxChartItems: o.MaxChartItems}
	if l.MaxTrees <= 0 {
		l.MaxTrees = DefaultMaxTrees
	}
	if l.MaxChartItems <= 0 {
		l.MaxChartItems = DefaultMaxChartItems
	}
	return l
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return DefaultWorkers
	}
	return o.Workers
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
