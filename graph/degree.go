package graph

// AverageDegree returns the mean number of non-nil neighbors across every
// key in g. An empty graph has an average degree of 0.
func AverageDegree(g Graph) float64 {
	if len(g) == 0 {
		return 0
	}
	var total int
	for key := range g {
		total += len(g.Neighbors(key))
	}
	return float64(total) / float64(len(g))
}

// StartingPositions returns the number of distinct keys on the layout
// used to determine S in the spatial guess estimator: qwerty-family
// layouts start from every key on the qwerty graph, keypad-family
// layouts start from every key on the keypad graph.
func StartingPositions(t Table, layout string) int {
	switch layout {
	case "qwerty", "dvorak":
		return len(t["qwerty"])
	default:
		return len(t["keypad"])
	}
}
