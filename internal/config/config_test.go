package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with a 4x4 board and named players
		path := writeConfig(t, `
log-level: debug
board-size: 4
no-color: true
players:
  - name: Uday
    mark: X
  - name: Ajay
    mark: O
`)

		// When: the config is loaded
		config, err := Load(path)

		// Then: all values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, 4, config.BoardSize)
		assert.True(t, bool(config.NoColor))
		assert.Equal(t, []Player{{Name: "Uday", Mark: "X"}, {Name: "Ajay", Mark: "O"}}, config.Players)
	})

	t.Run("Any non-empty NO_COLOR disables colors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yml")

		for value, expected := range map[string]bool{"yes": true, "1": true, "false": true, "": false} {
			// Given: NO_COLOR set in the environment
			t.Setenv("NO_COLOR", value)

			// When: the config is loaded
			config, err := Load(path)

			// Then: only an empty value keeps colors on
			require.NoError(t, err, value)
			assert.Equal(t, expected, bool(config.NoColor), value)
		}
	})

	t.Run("NO_COLOR overrides the file", func(t *testing.T) {
		// Given: colors on in the file and NO_COLOR set
		path := writeConfig(t, "no-color: false\n")
		t.Setenv("NO_COLOR", "yes")

		// When: the config is loaded
		config, err := Load(path)

		// Then: colors are off
		require.NoError(t, err)
		assert.True(t, bool(config.NoColor))
	})

	t.Run("Falls back to env and defaults without a file", func(t *testing.T) {
		// Given: no config file and a board size in the environment
		t.Setenv("BOARD_SIZE", "5")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: the config is loaded
		config, err := Load(path)

		// Then: env and defaults are used
		require.NoError(t, err)
		assert.Equal(t, 5, config.BoardSize)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, DefaultPlayers(), config.Players)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		// Given: a file with info level and LOG_LEVEL=error
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "error")

		// When: the config is loaded
		config, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "error", config.LogLevel)
		assert.Equal(t, 3, config.BoardSize)
	})

	t.Run("Rejects invalid values", func(t *testing.T) {
		cases := map[string]string{
			"board too large": "board-size: 40\n",
			"unknown level":   "log-level: loud\n",
			"unknown mark":    "players:\n  - {name: A, mark: X}\n  - {name: B, mark: Z}\n",
			"single player":   "players:\n  - {name: A, mark: X}\n",
			"empty name":      "players:\n  - {name: A, mark: X}\n  - {name: '', mark: O}\n",
			"duplicate names": "players:\n  - {name: A, mark: X}\n  - {name: A, mark: O}\n",
		}

		for name, content := range cases {
			// When: an invalid config is loaded
			_, err := Load(writeConfig(t, content))

			// Then: a validation error is returned
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors, name)
		}
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "board-size: -1\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
