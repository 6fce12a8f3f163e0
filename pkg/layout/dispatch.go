package layout

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// Func computes a layout table for a graph. Implementations must not mutate
// the input graph.
type Func func(ctx context.Context, g *graph.Graph, opts Options) (*Table, error)

// builtins is the closed catalog of algorithm names. Registered custom
// algorithms are consulted only after builtin resolution fails.
var builtins = map[string]Func{
	"dendrogram": Dendrogram,
	"linear":     Linear,
	"treemap":    Treemap,
	"hive":       Hive,
	"circle":     Circle,
	"star":       Star,
	"grid":       Grid,
	"eades":      Eades,
	"isomap":     Isomap,
	"dot":        graphvizEngine("dot"),
	"neato":      graphvizEngine("neato"),
	"fdp":        graphvizEngine("fdp"),
	"circo":      graphvizEngine("circo"),
	"twopi":      graphvizEngine("twopi"),
	"sfdp":       graphvizEngine("sfdp"),
}

// circularBuiltins lists the builtins that honor the circular option.
var circularBuiltins = map[string]bool{
	"dendrogram": true,
	"linear":     true,
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{}
)

// Register adds a custom layout algorithm under the given name. Names shadow
// nothing: registering a builtin name fails with INVALID_OPTION.
func Register(name string, fn Func) error {
	key := strings.ToLower(name)
	if _, ok := builtins[key]; ok {
		return errors.New(errors.ErrCodeInvalidOption, "layout name %q is builtin", name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = fn
	return nil
}

// namePrefixes are conventional prefixes stripped during name resolution, so
// "in_circle" and "as_treemap" resolve to their base algorithms.
var namePrefixes = []string{"as_", "in_", "with_", "on_"}

// Resolve maps an algorithm name to its canonical form and function. Lookup
// is case-insensitive: exact builtin first, then the name with one
// conventional prefix stripped, then registered custom algorithms.
func Resolve(name string) (string, Func, error) {
	key := strings.ToLower(name)
	if fn, ok := builtins[key]; ok {
		return key, fn, nil
	}
	for _, prefix := range namePrefixes {
		if stripped, ok := strings.CutPrefix(key, prefix); ok {
			if fn, ok := builtins[stripped]; ok {
				return stripped, fn, nil
			}
		}
	}
	registryMu.RLock()
	fn, ok := registry[key]
	registryMu.RUnlock()
	if ok {
		return key, fn, nil
	}
	return "", nil, errors.New(errors.ErrCodeUnknownLayout, "unknown layout %q", name)
}

// Algorithms returns the sorted names of all resolvable algorithms.
func Algorithms() []string {
	registryMu.RLock()
	names := make([]string, 0, len(builtins)+len(registry))
	for name := range builtins {
		names = append(names, name)
	}
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

// Compute resolves name and runs the algorithm. The circular option is
// rejected for builtins that have no circular form.
func Compute(ctx context.Context, g *graph.Graph, name string, opts Options) (*Table, error) {
	canonical, fn, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if opts.Circular {
		if _, builtin := builtins[canonical]; builtin && !circularBuiltins[canonical] {
			return nil, errors.New(errors.ErrCodeInvalidOption,
				"layout %q has no circular form", canonical)
		}
	}
	table, err := fn(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	table.Algorithm = canonical
	return table, nil
}
