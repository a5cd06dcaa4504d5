package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type globalFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:   "montepi",
		Short: "Estimate π by Monte Carlo sampling",
		Long: `montepi scatters points uniformly in a square, counts how many land under a
quarter circle and tracks the running estimate 4·inside/k.

The experiment runs over several sample-size tiers with several independent
attempts per tier. Results are printed as tables, or emitted as a binary
archive with --emit for a plotting tool to read from stdin.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newRunCmd(&gf))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the montepi version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "montepi %s\n", version)
			return err
		},
	}
}

// newLogger builds a console logger on w. Info and above by default, debug when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core)
}
