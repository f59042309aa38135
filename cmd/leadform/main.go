package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-leadform/pkg/orchestrator"
)

// cli carries the state shared by every subcommand.
type cli struct {
	verbose    bool
	schoolsDir string

	logger *zap.Logger
	orch   *orchestrator.Orchestrator
}

// newRootCmd builds the command tree. A nil logger is replaced by a zap
// production logger once flags are parsed.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	app := &cli{logger: logger}

	root := &cobra.Command{
		Use:           "leadform",
		Short:         "Resolve, validate and serve school lead forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&app.schoolsDir, "schools", "", "Directory of school files (default: embedded schools)")

	root.AddCommand(
		newSchoolsCmd(app),
		newFieldsCmd(app),
		newValidateCmd(app),
		newFillCmd(app),
		newServeCmd(app),
	)
	return root
}

func (c *cli) init() error {
	if c.logger == nil {
		config := zap.NewProductionConfig()
		if c.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		c.logger = logger
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(c.logger)}
	if c.schoolsDir != "" {
		opts = append(opts, orchestrator.WithSchoolsFS(os.DirFS(c.schoolsDir)))
	}
	c.orch = orchestrator.New(opts...)
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
