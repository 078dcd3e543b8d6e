// Package testdata ships literal adjacency-graph fixtures for tests
// only. Loading real keyboard/keypad graphs from disk is out of scope
// for this module (spec.md §1 Non-goals); production callers supply
// their own graph.Loader.
package testdata

import "github.com/passwdlab/zxcvbn-core/graph"

// qwertyRows lists the top three letter rows of a US qwerty layout,
// staggered the way physical keys are, used to derive left/right/up/down
// adjacency for the fixture below.
var qwertyRows = [][]string{
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
	{"z", "x", "c", "v", "b", "n", "m"},
}

// QWERTY builds a small but genuinely adjacency-consistent qwerty graph
// fixture: each key's neighbor list holds its same-row left/right
// neighbors and the closest key(s) in the row above/below, nil-padded to
// a fixed width the way the real zxcvbn adjacency tables are.
func QWERTY() graph.Graph {
	g := make(graph.Graph)
	pos := map[string][2]int{}
	for r, row := range qwertyRows {
		for c, key := range row {
			pos[key] = [2]int{r, c}
		}
	}
	strp := func(s string) *string { return &s }
	for r, row := range qwertyRows {
		for c, key := range row {
			var neighbors [6]*string
			if c > 0 {
				neighbors[0] = strp(row[c-1])
			}
			if c < len(row)-1 {
				neighbors[1] = strp(row[c+1])
			}
			if r > 0 {
				above := qwertyRows[r-1]
				if c < len(above) {
					neighbors[2] = strp(above[c])
				}
				if c+1 < len(above) {
					neighbors[3] = strp(above[c+1])
				}
			}
			if r < len(qwertyRows)-1 {
				below := qwertyRows[r+1]
				if c-1 >= 0 && c-1 < len(below) {
					neighbors[4] = strp(below[c-1])
				}
				if c < len(below) {
					neighbors[5] = strp(below[c])
				}
			}
			g[key] = neighbors[:]
		}
	}
	return g
}

// keypadRows lists a numeric keypad's rows for the same kind of
// adjacency derivation as QWERTY.
var keypadRows = [][]string{
	{"7", "8", "9"},
	{"4", "5", "6"},
	{"1", "2", "3"},
	{"0"},
}

// Keypad builds a small numeric-keypad graph fixture, same shape as
// QWERTY.
func Keypad() graph.Graph {
	g := make(graph.Graph)
	strp := func(s string) *string { return &s }
	for r, row := range keypadRows {
		for c, key := range row {
			var neighbors [4]*string
			if c > 0 {
				neighbors[0] = strp(row[c-1])
			}
			if c < len(row)-1 {
				neighbors[1] = strp(row[c+1])
			}
			if r > 0 && c < len(keypadRows[r-1]) {
				neighbors[2] = strp(keypadRows[r-1][c])
			}
			if r < len(keypadRows)-1 && c < len(keypadRows[r+1]) {
				neighbors[3] = strp(keypadRows[r+1][c])
			}
			g[key] = neighbors[:]
		}
	}
	return g
}

// Table returns a graph.Table with both fixtures registered.
func Table() graph.Table {
	return graph.Table{
		"qwerty": QWERTY(),
		"keypad": Keypad(),
	}
}
