package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summarize fills the search statistics of g from the moves that ran a
// search. Passes and heuristic moves without a search are skipped.
func Summarize(g *GameMetric, moves []MoveMetric) {
	var durations, nodes []float64
	for _, m := range moves {
		if m.Passed {
			g.Passes++
		} else {
			g.TotalMoves++
		}
		if m.Duration == 0 && m.Nodes == 0 {
			continue
		}
		durations = append(durations, float64(m.Duration))
		nodes = append(nodes, float64(m.Nodes))
	}
	if len(durations) == 0 {
		return
	}

	mean, std := stat.MeanStdDev(durations, nil)
	g.MeanSearch = time.Duration(mean)
	if len(durations) > 1 {
		g.StdDevSearch = time.Duration(std)
	}
	g.MeanNodes = stat.Mean(nodes, nil)
}
