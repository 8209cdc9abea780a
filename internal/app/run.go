package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/config"
	"github.com/vk/bomres/internal/ctxlog"
	"github.com/vk/bomres/internal/engine"
	"github.com/vk/bomres/internal/export"
	"github.com/vk/bomres/internal/ingest"
	"github.com/vk/bomres/internal/match"
	"github.com/vk/bomres/internal/stats"
)

// Run executes one resolution run: load the resolver configuration, read
// the input table, resolve every row, write the augmented table out, and
// log the summary statistics.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadModel(ctx)
	if err != nil {
		return err
	}

	table, err := ingest.ReadFile(ctx, a.config.InputPath, a.config.Sheet)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(table) == 0 {
		a.logger.Warn("Input table is empty; nothing to resolve.", "input", a.config.InputPath)
	}
	a.logger.Info("Input table loaded.", "input", a.config.InputPath, "rows", len(table))

	resolver := engine.New(ctx, table, buildOptions(model))
	resolved := resolver.Resolve(ctx)

	if err := a.writeOutput(resolved); err != nil {
		return err
	}

	summary := stats.Summarize(resolved)
	a.logger.Info("Resolution finished.",
		"rows", summary.Rows,
		"changed", summary.Changed,
		"changed_pct", fmt.Sprintf("%.1f", summary.ChangedPct),
		"usage_mean", summary.MeanUsage,
		"usage_min", summary.MinUsage,
		"usage_max", summary.MaxUsage,
		"usage_stddev", summary.StdDev,
	)
	if hits := resolver.DepthCapHits(); hits > 0 {
		a.logger.Warn("Some rows hit the traversal depth cap; check the export for cyclic or malformed indenture levels.",
			"rows_affected", hits)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadModel reads the resolver configuration file when one is given and
// applies the command-line pattern override.
func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	model := config.Default()
	if a.config.ConfigPath != "" {
		loaded, err := a.loader.Load(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
	}
	if a.config.Pattern != "" {
		model.Pattern = match.SplitPrefixes(a.config.Pattern)
	}
	return model, nil
}

// buildOptions compiles the configuration model into the engine's
// matchers and rule set.
func buildOptions(model *config.Model) engine.Options {
	opts := engine.Options{
		Pattern: match.New(model.Pattern),
		ClassA:  match.New(model.ClassA),
		ClassB:  match.New(model.ClassB),
	}
	for _, rule := range model.SpecialRules {
		opts.SpecialRules = append(opts.SpecialRules, match.Rule{
			LevelBound: rule.Level,
			Prefixes:   match.New(rule.Prefixes),
		})
	}
	return opts
}

// writeOutput writes the resolved CSV to the configured path, or to the
// application's output writer when no path is set.
func (a *App) writeOutput(resolved bom.Table) error {
	if a.config.OutputPath == "" {
		return export.WriteCSV(a.outW, resolved)
	}

	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, resolved); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.logger.Info("Resolved table written.", "output", a.config.OutputPath)
	return nil
}
