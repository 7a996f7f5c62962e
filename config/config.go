package config

import (
	"fmt"
	"os"
	"reversi/game"
	"reversi/player"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile = "reversi/config.yaml"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Search struct {
	Depth    int           `yaml:"depth"`
	Opponent string        `yaml:"opponent"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Symbols struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
	Empty   string `yaml:"empty"`
}

type Config struct {
	Topology   string    `yaml:"topology"`
	SideLength int       `yaml:"side_length"`
	Players    [2]string `yaml:"players"`
	Search     Search    `yaml:"search"`
	Seed       uint64    `yaml:"seed"`
	MaxTurns   int       `yaml:"max_turns"`
	LogLevel   string    `yaml:"log_level"`
	MetricsDir string    `yaml:"metrics_dir"`
	Symbols    Symbols   `yaml:"symbols"`
}

// Load reads the config file from the XDG config directories over the
// defaults. A missing file is not an error.
func Load() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, config.Validate()
	}
	return LoadFile(absPath)
}

func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	topology, err := game.TopologyByName(c.Topology)
	if err != nil {
		return &InvalidConfig{err.Error()}
	}
	if err = topology.ValidateSideLength(c.SideLength); err != nil {
		return &InvalidConfig{err.Error()}
	}
	for _, kind := range c.Players {
		if !slices.Contains(player.Kinds, kind) {
			return &InvalidConfig{fmt.Sprintf("unknown player type %q", kind)}
		}
	}
	if c.Search.Opponent == player.Human || c.Search.Opponent == "minimax" || !slices.Contains(player.Kinds, c.Search.Opponent) {
		return &InvalidConfig{fmt.Sprintf("%q cannot model the opponent", c.Search.Opponent)}
	}
	if c.Search.Depth < 0 {
		return &InvalidConfig{"search depth must be 0 or more"}
	}
	if c.MaxTurns <= 0 {
		return &InvalidConfig{"max turns must be positive"}
	}
	if _, err = zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{err.Error()}
	}
	for _, s := range []string{c.Symbols.Player1, c.Symbols.Player2, c.Symbols.Empty} {
		if utf8.RuneCountInString(s) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be a single character", s)}
		}
		if r, _ := utf8.DecodeRuneInString(s); r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// Save writes c to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, c.SaveFile(absPath)
}

func (c *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0664)
}

func (c *Config) PlayerOptions() player.Options {
	return player.Options{
		Depth:    c.Search.Depth,
		Opponent: c.Search.Opponent,
		Timeout:  c.Search.Timeout,
		Seed:     c.Seed,
		Metrics:  c.MetricsDir != "",
	}
}

// Runes returns the display symbols as runes.
func (s Symbols) Runes() (player1, player2, empty rune) {
	player1, _ = utf8.DecodeRuneInString(s.Player1)
	player2, _ = utf8.DecodeRuneInString(s.Player2)
	empty, _ = utf8.DecodeRuneInString(s.Empty)
	return player1, player2, empty
}
