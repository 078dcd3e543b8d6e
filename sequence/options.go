package sequence

import (
	"log"

	"github.com/passwdlab/zxcvbn-core/graph"
	"github.com/passwdlab/zxcvbn-core/guess"
)

type options struct {
	excludeAdditive bool
	tunables        guess.Tunables
	graphs          graph.Table
	logger          *log.Logger
}

// Option configures a Search call.
type Option func(*options)

// ExcludeAdditive omits the "attacker tries shorter covers first"
// additive term from the sequence-work objective, per spec.md §4.3.
func ExcludeAdditive() Option {
	return func(o *options) { o.excludeAdditive = true }
}

// WithTunables overrides the default guess.Tunables, e.g. to inject a
// fixed ReferenceYear for deterministic tests (spec.md §9).
func WithTunables(t guess.Tunables) Option {
	return func(o *options) { o.tunables = t }
}

// WithGraphs supplies the adjacency-graph table spatial matches need.
// Searches with no Spatial matches may omit this.
func WithGraphs(g graph.Table) Option {
	return func(o *options) { o.graphs = g }
}

// WithLogger overrides the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}
