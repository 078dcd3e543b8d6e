package zxcvbncore

import (
	"github.com/passwdlab/zxcvbn-core/graph"
	"github.com/passwdlab/zxcvbn-core/match"
	"github.com/passwdlab/zxcvbn-core/sequence"
)

// MostGuessableMatchSequence is spec.md §6's primary operation: given a
// password and the candidate matches a producer found for it, return the
// cheapest non-overlapping cover and its total guess count. cfg supplies
// the tunables; graphs supplies the adjacency data any Spatial match
// needs (nil is fine when there are none).
func MostGuessableMatchSequence(password string, matches []match.Match, cfg Config, graphs graph.Table) (sequence.Result, error) {
	opts := []sequence.Option{
		sequence.WithTunables(cfg.Tunables()),
		sequence.WithGraphs(graphs),
	}
	if enabled, err := cfg.IsGlobalEnabled(ExcludeAdditive); err == nil && enabled {
		opts = append(opts, sequence.ExcludeAdditive())
	}
	return sequence.Search(password, matches, opts...)
}
