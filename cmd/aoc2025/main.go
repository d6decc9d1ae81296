// Command aoc2025 solves the Advent of Code 2025 puzzles.
package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/lkrol/aoc2025"
	"github.com/spf13/cobra"
)

//go:embed day*.go
var source embed.FS

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	envFile    string
	dataDir    string
	day        int
	part       string
	sample     bool
	skipSample bool
	debug      bool
	stdin      bool
}

func rootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "aoc2025",
		Short: "Advent of Code 2025 solutions",
		Long: `Runs the Advent of Code 2025 solvers.

Each part is first checked against the sample from its doc comment, then
run on ./data/day<N>.txt. With --stdin the input is read from standard
input up to a line holding only the end marker (END by default).`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.envFile, "env-file", ".env", "optional .env file with AOC_* settings")
	f.StringVar(&o.dataDir, "data-dir", "", "directory holding day<N>.txt (overrides AOC_DATA_DIR)")
	f.IntVarP(&o.day, "day", "d", -1, "day to run; all days when unset")
	f.StringVarP(&o.part, "part", "p", "", "part to run")
	f.BoolVar(&o.sample, "sample", false, "only run samples")
	f.BoolVar(&o.skipSample, "skip-sample", false, "skip samples")
	f.BoolVar(&o.debug, "debug", false, "debug logging")
	f.BoolVar(&o.stdin, "stdin", false, "read the input from stdin (needs --day)")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")

	cmd.AddCommand(versionCmd())
	return cmd
}

func run(cmd *cobra.Command, o options) error {
	cfg, err := aoc.LoadConfig(o.envFile)
	if err != nil {
		return err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	cfg.Day = o.day
	cfg.Part = o.part
	cfg.OnlySample = o.sample
	cfg.SkipSample = o.skipSample
	cfg.Debug = o.debug
	cfg.FromStdin = o.stdin

	logger, err := aoc.NewLogger(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	r := &aoc.Runner{
		Config: cfg,
		Log:    logger,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	return r.Run(cmd.Context(), source, &solver{})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aoc2025 %s (%s)\n", version, commit)
		},
	}
}
