package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lattica/lattica/pkg/cache"
	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
	"github.com/lattica/lattica/pkg/graphio"
	"github.com/lattica/lattica/pkg/layout"
	"github.com/lattica/lattica/pkg/observability"
)

// Runner executes the import → layout pipeline with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// execution results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete import → layout pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	result := &Result{RunID: uuid.New()}
	logger = logger.With("run", result.RunID.String())

	// Stage 1: Import
	importStart := time.Now()
	g, err := r.importGraph(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.ImportTime = time.Since(importStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()

	graphData, err := json.Marshal(graphio.ToGraphDoc(g))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hashing graph")
	}
	result.GraphHash = cache.Hash(graphData)

	logger.Info("imported graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.ImportTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	doc, hit, err := r.computeLayout(ctx, g, result.GraphHash, opts, logger)
	if err != nil {
		return nil, err
	}
	result.Layout = doc
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = hit

	logger.Info("computed layout",
		"algorithm", doc.Algorithm,
		"rows", len(doc.Rows),
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// importGraph loads the input graph from the options.
func (r *Runner) importGraph(ctx context.Context, opts Options) (*graph.Graph, error) {
	if opts.Graph != nil {
		return opts.Graph, nil
	}
	hooks := observability.Layout()
	hooks.OnImportStart(ctx, opts.Input)
	start := time.Now()
	g, err := graphio.ImportGraph(opts.Input)
	if err != nil {
		hooks.OnImportComplete(ctx, opts.Input, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnImportComplete(ctx, opts.Input, g.VertexCount(), time.Since(start), nil)
	return g, nil
}

// computeLayout returns the layout document for the graph, consulting the
// cache first unless a refresh is requested.
func (r *Runner) computeLayout(ctx context.Context, g *graph.Graph, graphHash string, opts Options, logger *log.Logger) (*graphio.LayoutDoc, bool, error) {
	key := cache.LayoutKey(graphHash, opts.Algorithm, opts.Layout)
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var doc graphio.LayoutDoc
			if err := json.Unmarshal(data, &doc); err == nil {
				cacheHooks.OnCacheHit(ctx, "layout")
				return &doc, true, nil
			}
			// Corrupt entry; recompute.
		}
		cacheHooks.OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, opts.Algorithm, g.VertexCount())
	start := time.Now()
	table, err := layout.Compute(ctx, g, opts.Algorithm, opts.Layout)
	hooks.OnLayoutComplete(ctx, opts.Algorithm, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for _, n := range table.Notices {
		hooks.OnNotice(ctx, table.Algorithm, n.Code)
		logger.Warn("layout notice", "code", n.Code, "message", n.Message)
	}

	doc := graphio.ToLayoutDoc(table)
	if data, err := json.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err == nil {
			cacheHooks.OnCacheSet(ctx, "layout", len(data))
		}
	}
	return doc, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// logger picks the per-execution logger.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// WriteLayoutFile is a convenience for callers that want the document on
// disk; it round-trips through the same wire form the cache stores.
func WriteLayoutFile(doc *graphio.LayoutDoc, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding layout")
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
