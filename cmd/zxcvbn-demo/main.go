// Command zxcvbn-demo exercises the guess-estimation core end to end
// without an accompanying match producer: it hands the optimizer an
// empty candidate list, so the whole password falls back to the
// bruteforce estimator, and prints the resulting guess count colorized
// by rough crack-time bucket.
//
// Dictionary, spatial, repeat, sequence, regex, and date detection are
// out of scope for this module (spec.md §1); a real deployment would
// pass MostGuessableMatchSequence the matches its own producers found.
package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"

	zxcvbncore "github.com/passwdlab/zxcvbn-core"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: zxcvbn-demo <password>")
		os.Exit(2)
	}
	password := os.Args[1]

	result, err := zxcvbncore.MostGuessableMatchSequence(password, nil, zxcvbncore.NewConfig(), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	bucket := crackTimeBucket(result.Guesses)
	label := fmt.Sprintf("guesses: %.4g (log10 %.2f) — %s", result.Guesses, result.GuessesLog10, bucket.name)
	fmt.Println(bucket.theme.Sprint(label))
	for _, m := range result.Sequence {
		span := m.Span()
		fmt.Printf("  [%d,%d] %T %q -> %.4g guesses\n", span.I, span.J, m, span.Token, m.Estimate().Guesses)
	}
}

var (
	instantTheme = color.New(color.FgLightWhite, color.BgRed)
	weakTheme    = color.New(color.FgBlack, color.BgYellow)
	fairTheme    = color.New(color.FgBlack, color.BgCyan)
	strongTheme  = color.New(color.FgWhite, color.BgGreen)
)

type bucketLabel struct {
	name  string
	theme color.Style
}

// crackTimeBucket labels a guess count the way a strength meter would,
// picking the gookit/color theme to render that label in.
func crackTimeBucket(guesses float64) bucketLabel {
	switch {
	case guesses < 1e3:
		return bucketLabel{"instant", instantTheme}
	case guesses < 1e6:
		return bucketLabel{"seconds to minutes", weakTheme}
	case guesses < 1e10:
		return bucketLabel{"hours to days", fairTheme}
	default:
		return bucketLabel{"years or more", strongTheme}
	}
}
