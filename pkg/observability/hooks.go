// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about each stage of a chart run: parsing the
// word file, partitioning the trie into rings and rendering the artifact.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, path)
//	// ... read records ...
//	observability.Pipeline().OnParseComplete(ctx, path, len(records), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, path string)
	OnParseComplete(ctx context.Context, path string, records int, duration time.Duration, err error)

	// Partition events
	OnPartitionStart(ctx context.Context, nodes int)
	OnPartitionComplete(ctx context.Context, rings int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, vizType, format string)
	OnRenderComplete(ctx context.Context, vizType, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnPartitionStart(context.Context, int)                              {}
func (NoopPipelineHooks) OnPartitionComplete(context.Context, int, time.Duration, error)     {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, string)                      {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
