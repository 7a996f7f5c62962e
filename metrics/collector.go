package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Positions expanded below the horizon
	Horizons  int // Positions settled by a heuristic at the horizon
	Terminals int // Positions where neither player could move
	Cancelled bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Coordinate // Nil when the player passed
	Passed bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a tie
	Scores         [game.NumPlayers]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	MeanSearch     time.Duration
	StdDevSearch   time.Duration
	MeanNodes      float64
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddHorizon()
	AddTerminal()
	Cancel()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	horizons  atomic.Int32
	terminals atomic.Int32
	cancelled atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.horizons.Store(0)
	m.terminals.Store(0)
	m.cancelled.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddHorizon() {
	m.horizons.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Cancel() {
	m.cancelled.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Horizons:  int(m.horizons.Load()),
		Terminals: int(m.terminals.Load()),
		Cancelled: m.cancelled.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddHorizon()            {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Cancel()                {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
