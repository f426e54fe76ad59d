package cmd

import (
	"fmt"
	"os"

	"logdiff/core/config"
	"logdiff/core/logger"
	"logdiff/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputDir string

// compareCmd runs the full comparison pipeline over two log files.
var compareCmd = &cobra.Command{
	Use:   "compare <file1> <file2>",
	Short: "Compare timed-query records between two log files",
	Long: `Compare two application logs of timed query executions.

Loads every timed-query record from both files, pairs records with equal
query text across the two, and writes three artifacts next to the working
directory: a report table (also printed to the console) and one diff file
per side listing the records unique to it.

Examples:
  # Compare two runs
  logdiff compare before.log after.log

  # Send artifacts somewhere else
  logdiff compare before.log after.log --output-dir /tmp/results`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for report and diff artifacts (overrides COMPARE_OUTPUT_DIR)")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	if outputDir != "" {
		cfg.Compare.OutputDir = outputDir
	}

	l.Info("Starting log comparison",
		zap.String("left", args[0]),
		zap.String("right", args[1]),
	)

	svc := compare.NewService(cfg.Compare, l, os.Stdout)
	sum, err := svc.Run(args[0], args[1])
	if err != nil {
		return err
	}

	l.Info("Comparison finished",
		zap.Int("common", sum.CommonCount),
		zap.Int("unique_left", sum.Left.Unique),
		zap.Int("unique_right", sum.Right.Unique),
	)

	return nil
}
