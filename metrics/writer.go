package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer exports the metrics of one game as CSV files in a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGame(game GameMetric) error {
	header := []string{"starting_player", "winner", "score1", "score2", "start_time", "end_time", "duration",
		"total_moves", "passes", "mean_search", "stddev_search", "mean_nodes"}
	row := []string{
		strconv.Itoa(int(game.StartingPlayer)),
		strconv.Itoa(int(game.Winner)),
		strconv.Itoa(game.Scores[0]),
		strconv.Itoa(game.Scores[1]),
		game.StartTime.Format(time.RFC3339),
		game.EndTime.Format(time.RFC3339),
		game.Duration.String(),
		strconv.Itoa(game.TotalMoves),
		strconv.Itoa(game.Passes),
		game.MeanSearch.String(),
		game.StdDevSearch.String(),
		strconv.FormatFloat(game.MeanNodes, 'f', 2, 64),
	}
	return w.write("game.csv", header, [][]string{row})
}

func (w *Writer) WriteMoves(moves []MoveMetric) error {
	header := []string{"step", "player", "move", "passed", "depth", "duration", "nodes", "horizons", "terminals", "cancelled"}
	rows := make([][]string, 0, len(moves))
	for _, m := range moves {
		move := ""
		if m.Move != nil {
			move = m.Move.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(m.Step),
			strconv.Itoa(int(m.Player)),
			move,
			strconv.FormatBool(m.Passed),
			strconv.Itoa(m.Depth),
			m.Duration.String(),
			strconv.Itoa(m.Nodes),
			strconv.Itoa(m.Horizons),
			strconv.Itoa(m.Terminals),
			strconv.FormatBool(m.Cancelled),
		})
	}
	return w.write("moves.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
