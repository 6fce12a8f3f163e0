package graph

// asFloat converts the numeric types that survive JSON and BSON decoding.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// NumericAttr extracts a numeric attribute column: one value per vertex in
// index order. Returns false if any vertex is missing the attribute or holds
// a non-numeric value.
func (g *Graph) NumericAttr(name string) ([]float64, bool) {
	out := make([]float64, len(g.vmeta))
	for i, m := range g.vmeta {
		v, ok := m[name]
		if !ok {
			return nil, false
		}
		f, ok := asFloat(v)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// StringAttr extracts a categorical attribute column: one value per vertex in
// index order. Returns false if any vertex is missing the attribute or holds
// a non-string value.
func (g *Graph) StringAttr(name string) ([]string, bool) {
	out := make([]string, len(g.vmeta))
	for i, m := range g.vmeta {
		v, ok := m[name]
		if !ok {
			return nil, false
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// HasAttr reports whether every vertex carries the named attribute.
func (g *Graph) HasAttr(name string) bool {
	if len(g.vmeta) == 0 {
		return false
	}
	for _, m := range g.vmeta {
		if _, ok := m[name]; !ok {
			return false
		}
	}
	return true
}
