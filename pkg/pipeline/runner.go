package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordvis/pkg/observability"
)

// Runner encapsulates pipeline execution with logging and hooks.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → partition → render pipeline.
//
// The context is checked between stages so a cancelled run stops before any
// artifact is produced. Nothing is written to disk; the caller decides what
// to do with Result.Artifact.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	result := &Result{Format: opts.Format}

	// Stage 1: Parse
	parseStart := time.Now()
	hooks.OnParseStart(ctx, opts.Input)
	records, err := Parse(ctx, opts)
	if err == nil {
		result.Trie, err = BuildTrie(records)
	}
	result.Stats.ParseTime = time.Since(parseStart)
	hooks.OnParseComplete(ctx, opts.Input, len(records), result.Stats.ParseTime, err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	ts := result.Trie.Stats()
	result.Stats.Records = len(records)
	result.Stats.Nodes = ts.Nodes
	result.Stats.Words = ts.Words

	r.Logger.Info("built trie",
		"records", len(records),
		"words", ts.Words,
		"nodes", ts.Nodes,
		"depth", ts.MaxDepth,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Partition
	partitionStart := time.Now()
	hooks.OnPartitionStart(ctx, ts.Nodes)
	tiers, err := Partition(result.Trie)
	result.Stats.PartitionTime = time.Since(partitionStart)
	hooks.OnPartitionComplete(ctx, tiers.Depth(), result.Stats.PartitionTime, err)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}
	result.Tiers = tiers
	result.Stats.Rings = tiers.Depth()

	r.Logger.Info("partitioned rings",
		"rings", tiers.Depth(),
		"arcs", tiers.Len(),
		"duration", result.Stats.PartitionTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Format)
	artifact, err := Render(ctx, result.Trie, tiers, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Format, len(artifact), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact

	r.Logger.Info("rendered output",
		"type", opts.VizType,
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
