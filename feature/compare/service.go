package compare

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"logdiff/core/reconcile"

	"go.uber.org/zap"
)

// Service runs the comparison pipeline for two log files.
type Service struct {
	cfg    Config
	loader *Loader
	logger *zap.Logger
	stdout io.Writer
}

// NewService creates a new comparison service. The stdout writer receives
// the report table in addition to the report artifact.
func NewService(cfg Config, logger *zap.Logger, stdout io.Writer) *Service {
	return &Service{
		cfg:    cfg,
		loader: NewLoader(NewParser(cfg), logger),
		logger: logger,
		stdout: stdout,
	}
}

// Run compares the two log files: it validates both paths, loads and sorts
// their records, reconciles the two sequences, prints the report table to
// the console and to the report artifact, and writes the two diff
// artifacts. Validation failures abort before any artifact is written.
func (s *Service) Run(leftPath, rightPath string) (*reconcile.Summary, error) {
	// Both inputs are checked up front so a bad second path cannot leave
	// partial output behind.
	for _, path := range []string{leftPath, rightPath} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("input file %s does not exist", path)
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	left, err := s.loader.Load(leftPath)
	if err != nil {
		return nil, err
	}
	right, err := s.loader.Load(rightPath)
	if err != nil {
		return nil, err
	}

	res := reconcile.Reconcile(left, right)
	sum := reconcile.Summarize(left, right, res)

	leftBase := filepath.Base(leftPath)
	rightBase := filepath.Base(rightPath)

	var table bytes.Buffer
	if err := RenderReport(&table, leftBase, rightBase, sum); err != nil {
		return nil, err
	}
	if _, err := s.stdout.Write(table.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write report to console: %w", err)
	}

	reportPath := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("report-%s-%s", leftBase, rightBase))
	if err := os.WriteFile(reportPath, table.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", reportPath, err)
	}

	leftDiff := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("diff-%s-%s", leftBase, rightBase))
	if err := WriteDiff(leftDiff, res.UniqueLeft); err != nil {
		return nil, err
	}
	rightDiff := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("diff-%s-%s", rightBase, leftBase))
	if err := WriteDiff(rightDiff, res.UniqueRight); err != nil {
		return nil, err
	}

	s.logger.Info("Comparison complete",
		zap.String("left", leftBase),
		zap.String("right", rightBase),
		zap.Int("common", sum.CommonCount),
		zap.Int("unique_left", sum.Left.Unique),
		zap.Int("unique_right", sum.Right.Unique),
	)

	return &sum, nil
}
