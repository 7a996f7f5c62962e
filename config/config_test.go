package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig

	require.NoError(t, config.Validate(), "Defaults should be valid")
	require.Equal(t, "hexagon", config.Topology)
	require.Equal(t, 4, config.SideLength)
	require.Equal(t, "goforcorners", config.Search.Opponent)
}

func TestLoadFile(t *testing.T) {
	t.Run("file values override the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
topology: square
side_length: 8
players: [capturemaxcells, minimax]
search:
  depth: 3
  timeout: 2s
`), 0644))

		config, err := LoadFile(path)

		require.NoError(t, err)
		require.Equal(t, "square", config.Topology)
		require.Equal(t, 8, config.SideLength)
		require.Equal(t, [2]string{"capturemaxcells", "minimax"}, config.Players)
		require.Equal(t, 3, config.Search.Depth)
		require.Equal(t, 2*time.Second, config.Search.Timeout)
		require.Equal(t, "goforcorners", config.Search.Opponent, "Unset values should keep their default")
		require.Equal(t, "X", config.Symbols.Player1, "Unset values should keep their default")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("topology: square\nside_length: 5\n"), 0644))

		_, err := LoadFile(path)

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid, "Odd square side should be an invalid config")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("players: {"), 0644))

		_, err := LoadFile(path)

		require.Error(t, err)
	})

	t.Run("saved config loads back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		config := DefaultConfig
		config.Seed = 99
		config.Players = [2]string{"randomvalidmove", "checkcornersfirst"}

		require.NoError(t, config.SaveFile(path))
		loaded, err := LoadFile(path)

		require.NoError(t, err)
		require.Equal(t, config, *loaded)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown topology":     func(c *Config) { c.Topology = "triangle" },
		"small hexagon":        func(c *Config) { c.SideLength = 2 },
		"unknown player":       func(c *Config) { c.Players[1] = "alphabeta" },
		"minimax opponent":     func(c *Config) { c.Search.Opponent = "minimax" },
		"human opponent":       func(c *Config) { c.Search.Opponent = "human" },
		"negative depth":       func(c *Config) { c.Search.Depth = -1 },
		"no turns":             func(c *Config) { c.MaxTurns = 0 },
		"unknown log level":    func(c *Config) { c.LogLevel = "loud" },
		"two character symbol": func(c *Config) { c.Symbols.Empty = "__" },
		"control symbol":       func(c *Config) { c.Symbols.Player1 = "\t" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig
			mutate(&config)

			var invalid *InvalidConfig
			require.ErrorAs(t, config.Validate(), &invalid)
		})
	}
}

func TestSymbolRunes(t *testing.T) {
	p1, p2, empty := Symbols{Player1: "●", Player2: "○", Empty: "·"}.Runes()

	require.Equal(t, '●', p1)
	require.Equal(t, '○', p2)
	require.Equal(t, '·', empty)
}
