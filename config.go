package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config controls where puzzles come from and how the runner behaves.
// The exported env-backed fields read AOC_* variables; the rest are set
// from command line flags.
type Config struct {
	// Year is the Advent of Code event.
	// Env: AOC_YEAR (default: 2025)
	Year int `envconfig:"YEAR" default:"2025"`

	// DataDir holds day<N>.txt inputs and answers.yaml.
	// Env: AOC_DATA_DIR (default: ./data)
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// Session is the adventofcode.com session cookie used to fetch
	// missing inputs. When empty, SessionFile is read instead.
	// Env: AOC_SESSION
	Session string `envconfig:"SESSION"`

	// SessionFile holds the session cookie.
	// Env: AOC_SESSION_FILE (default: $HOME/keys/aoc.session)
	SessionFile string `envconfig:"SESSION_FILE"`

	// BaseURL is where inputs are fetched from.
	// Env: AOC_BASE_URL (default: https://adventofcode.com)
	BaseURL string `envconfig:"BASE_URL" default:"https://adventofcode.com"`

	// EndMarker ends input read from stdin when it appears alone on a line.
	// Env: AOC_END_MARKER (default: END)
	EndMarker string `envconfig:"END_MARKER" default:"END"`

	// LogLevel is the zap level name.
	// Env: AOC_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	Day        int    `ignored:"true"` // -1 means every day
	Part       string `ignored:"true"`
	OnlySample bool   `ignored:"true"`
	SkipSample bool   `ignored:"true"`
	Debug      bool   `ignored:"true"`
	FromStdin  bool   `ignored:"true"`
}

// LoadConfig reads envFile if it exists, then AOC_* environment
// variables. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}
	cfg := Config{Day: -1}
	if err := envconfig.Process("AOC", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

func (c Config) inputPath(day int) string {
	return filepath.Join(c.DataDir, fmt.Sprintf("day%d.txt", day))
}

func (c Config) answersPath() string {
	return filepath.Join(c.DataDir, "answers.yaml")
}

func (c Config) sessionFile() string {
	if c.SessionFile != "" {
		return c.SessionFile
	}
	return filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")
}

// session returns the session cookie, or "" if none is configured.
func (c Config) session() string {
	if c.Session != "" {
		return c.Session
	}
	b, err := os.ReadFile(c.sessionFile())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
