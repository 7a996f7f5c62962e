package config

var DefaultConfig = Config{
	Topology:   "hexagon",
	SideLength: 4,
	Players:    [2]string{"human", "minimax"},
	Search: Search{
		Depth:    2,
		Opponent: "goforcorners",
	},
	MaxTurns: 500,
	LogLevel: "info",
	Symbols: Symbols{
		Player1: "X",
		Player2: "O",
		Empty:   "_",
	},
}
