// Package sequence implements the optimal non-overlapping cover search
// of spec.md §4.3: a dynamic program over prefixes of the password that
// tracks, for every achievable cover length, the cheapest cover the
// attacker could try.
package sequence

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/passwdlab/zxcvbn-core/guess"
	"github.com/passwdlab/zxcvbn-core/match"
)

// Result is returned by Search.
type Result struct {
	Password     string
	Guesses      float64
	GuessesLog10 float64
	Sequence     []match.Match
	// RunID correlates this result with the log line Search emits for
	// it, the way a request ID correlates a service call with its logs.
	RunID uuid.UUID
}

var defaultLogger = log.New(os.Stderr, "[zxcvbn-core] ", log.LstdFlags)

// Search computes the minimum-work non-overlapping cover of password by
// matches and returns the resulting Result. It is spec.md §6's
// most_guessable_match_sequence.
//
// Search validates every match before running the optimizer; a
// malformed match (spec.md §7) makes it return a non-nil error instead
// of guessing at a default.
func Search(password string, matches []match.Match, opts ...Option) (Result, error) {
	o := options{
		tunables: guess.DefaultTunables(),
		logger:   defaultLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = defaultLogger
	}

	runID := uuid.New()
	start := time.Now()

	if err := validateAll(password, matches); err != nil {
		o.logger.Printf("run=%s rejected malformed input: %v", runID, err)
		return Result{}, err
	}

	n := len(password)
	if n == 0 {
		o.logger.Printf("run=%s password=%q guesses=1 sequence_length=0 elapsed=%s", runID, password, time.Since(start))
		return Result{Password: password, Guesses: 1, GuessesLog10: 0, Sequence: nil, RunID: runID}, nil
	}

	opt := newOptimal(password, o.graphs, o.tunables)
	buckets := bucketByEnd(n, matches)

	for k := 0; k < n; k++ {
		for _, m := range buckets[k] {
			i := m.Span().I
			if i > 0 {
				for l := range opt.rows[i-1] {
					opt.update(m, l+1, o.excludeAdditive)
				}
			} else {
				opt.update(m, 1, o.excludeAdditive)
			}
		}
		opt.bruteforceUpdate(k, o.excludeAdditive)
	}

	bestLen, ok := bestLength(opt.rows[n-1])
	if !ok {
		return Result{}, fmt.Errorf("sequence: no cover found for password of length %d", n)
	}

	seq := unwind(opt, n-1, bestLen)
	guesses := opt.rows[n-1][bestLen].g

	o.logger.Printf("run=%s password_length=%d sequence_length=%d guesses=%.4g elapsed=%s",
		runID, n, bestLen, guesses, time.Since(start))

	return Result{
		Password:     password,
		Guesses:      guesses,
		GuessesLog10: math.Log10(guesses),
		Sequence:     seq,
		RunID:        runID,
	}, nil
}

// unwind reconstructs the cover ending at (k, l) by walking predecessors
// back to the start of the password, per spec.md §4.3 step 3.
func unwind(opt *optimal, k, l int) []match.Match {
	seq := make([]match.Match, l)
	for k >= 0 {
		c := opt.rows[k][l]
		seq[l-1] = c.m
		k = c.m.Span().I - 1
		l--
	}
	return seq
}

// validateAll checks every match against password and returns a single
// error aggregating every rejection found, matching the teacher's
// multi-file error aggregation style (errors.go's sortErrors).
func validateAll(password string, matches []match.Match) error {
	var msgs []string
	for idx, m := range matches {
		if err := match.Validate(password, m); err != nil {
			msgs = append(msgs, match.NewError(idx, "%v", err).Error())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%d malformed match(es): %s", len(msgs), strings.Join(msgs, "; "))
}
