// Command figures renders the demo chart set for a course catalog and
// writes the companion summary workbook. By default it generates a
// deterministic synthetic catalog; set FIGURES_DATASET to render a real
// CSV export instead.
package main

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"courselens/adapters/csvio"
	"courselens/adapters/excel"
	"courselens/domain/table"
	"courselens/internal"
	"courselens/internal/analysis"
	"courselens/internal/config"
	"courselens/internal/errors"
	"courselens/internal/format"
	"courselens/internal/testkit"
)

type chartJob struct {
	file  string
	build func(table.Table, string) error
}

func main() {
	logger := internal.NewDefaultLogger()

	cfg, err := config.LoadFigures()
	if err != nil {
		logger.Error("loading configuration: %v", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("figure generation failed: %v", err)
		os.Exit(1)
	}
	logger.Info("all figures written to %s", cfg.OutputDir)
}

func run(cfg config.FiguresConfig, logger *internal.Logger) error {
	t, err := loadDataset(cfg, logger)
	if err != nil {
		return err
	}

	t, err = analysis.ExtractTemporalFeatures(t, testkit.ColPublished)
	if err != nil {
		return errors.Wrap(err, "deriving temporal features")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.FileError("creating output directory", err)
	}

	reportDataQuality(t, logger)

	jobs := []chartJob{
		{"correlation_matrix.png", correlationMatrixChart},
		{"subject_distribution.png", subjectPieChart},
		{"subscribers_distribution.png", subscribersChart},
		{"price_vs_subscribers.png", priceVsSubscribersChart},
		{"yearly_trend.png", yearlyTrendChart},
		{"free_vs_paid.png", freeVsPaidChart},
		{"subject_trends.png", subjectTrendsChart},
		{"level_distribution.png", levelChart},
		{"price_distribution.png", priceChart},
		{"banner.png", bannerChart},
	}

	var g errgroup.Group
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			path := filepath.Join(cfg.OutputDir, job.file)
			if err := job.build(t, path); err != nil {
				return errors.Wrapf(err, "rendering %s", job.file)
			}
			logger.Info("wrote %s", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeWorkbook(cfg, t, logger)
}

func loadDataset(cfg config.FiguresConfig, logger *internal.Logger) (table.Table, error) {
	if cfg.DatasetPath != "" {
		logger.Info("loading dataset from %s", cfg.DatasetPath)
		return csvio.Load(cfg.DatasetPath)
	}

	logger.Info("generating synthetic catalog: %d courses, seed %d", cfg.Rows, cfg.Seed)
	def := testkit.DefaultCourseConfig()
	free := cfg.Rows * def.FreeCourses / def.Rows
	gen, err := testkit.NewCourseGenerator(testkit.CourseConfig{
		Rows:        cfg.Rows,
		Seed:        cfg.Seed,
		FreeCourses: free,
	})
	if err != nil {
		return table.Table{}, errors.Wrap(err, "configuring generator")
	}
	return gen.Generate()
}

// reportDataQuality logs missing-value and outlier diagnostics before any
// chart renders, so a dirty dataset is visible even when rendering fails.
func reportDataQuality(t table.Table, logger *internal.Logger) {
	missing, err := analysis.AnalyzeMissingValues(t)
	if err != nil {
		logger.Warn("missing-value analysis failed: %v", err)
	} else if missing.Empty() {
		logger.Info("%s", missing.String())
	} else {
		for _, col := range missing.Columns {
			logger.Warn("column %s: %d missing (%.1f%%)", col.Column, col.Count, col.Percentage)
		}
	}

	for _, col := range numericColumns() {
		values, err := t.Floats(col)
		if err != nil {
			continue
		}
		result, err := analysis.DetectOutliersIQR(values, analysis.DefaultIQRMultiplier)
		if err != nil {
			logger.Warn("outlier detection failed for %s: %v", col, err)
			continue
		}
		logger.Info("column %s: %d outliers (%.2f%%), bounds [%s, %s]",
			col, result.Count, result.Percentage,
			format.LargeNumber(result.LowerBound), format.LargeNumber(result.UpperBound))
	}
}

func writeWorkbook(cfg config.FiguresConfig, t table.Table, logger *internal.Logger) error {
	summaries, err := analysis.SummaryStats(t, numericColumns())
	if err != nil {
		return errors.Wrap(err, "computing summary statistics")
	}
	missing, err := analysis.AnalyzeMissingValues(t)
	if err != nil {
		return errors.Wrap(err, "analyzing missing values")
	}

	path := filepath.Join(cfg.OutputDir, "summary_stats.xlsx")
	if err := excel.WriteReport(path, summaries, missing); err != nil {
		return err
	}
	logger.Info("wrote %s", path)
	return nil
}
