// Package pipeline orchestrates the import → layout cycle with caching and
// instrumentation. Both the CLI and embedding services use it to avoid
// duplicating cache-key and logging logic.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
	"github.com/lattica/lattica/pkg/graphio"
	"github.com/lattica/lattica/pkg/layout"
)

// Options configures one pipeline execution. Exactly one of Input and Graph
// supplies the graph.
type Options struct {
	// Input is the path of a JSON graph file.
	Input string

	// Graph supplies the graph directly, bypassing import.
	Graph *graph.Graph

	// Algorithm is the layout name, resolved with the usual prefix rules.
	Algorithm string

	// Layout carries the algorithm options.
	Layout layout.Options

	// Refresh bypasses the cache and overwrites any stored result.
	Refresh bool

	// Logger overrides the runner's logger for this execution.
	Logger *log.Logger
}

// validate checks the option combination before any work happens.
func (o *Options) validate() error {
	if o.Input == "" && o.Graph == nil {
		return errors.New(errors.ErrCodeInvalidInput, "either an input path or a graph is required")
	}
	if o.Input != "" && o.Graph != nil {
		return errors.New(errors.ErrCodeInvalidInput, "input path and graph are mutually exclusive")
	}
	if o.Algorithm == "" {
		return errors.New(errors.ErrCodeInvalidOption, "an algorithm name is required")
	}
	return nil
}

// Stats collects per-stage timings and graph shape for one execution.
type Stats struct {
	ImportTime  time.Duration
	LayoutTime  time.Duration
	VertexCount int
	EdgeCount   int
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	LayoutHit bool
}

// Result is the outcome of one pipeline execution.
type Result struct {
	// RunID uniquely identifies this execution in logs and hook events.
	RunID uuid.UUID

	// Graph is the imported (or provided) input graph.
	Graph *graph.Graph

	// GraphHash is the content hash of the serialized input graph.
	GraphHash string

	// Layout is the computed (or cached) layout document.
	Layout *graphio.LayoutDoc

	Stats     Stats
	CacheInfo CacheInfo
}
