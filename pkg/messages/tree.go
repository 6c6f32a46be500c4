package messages

import "strings"

// normalize converts nested map[any]any values into map[string]any.
func normalize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalize(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			if ks, ok := k.(string); ok {
				m[ks] = normalizeValue(item)
			}
		}
		return m
	default:
		return v
	}
}

// merge deep-merges src into dst. Values from src win.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(srcMap))
			merge(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

// lookup traverses a nested map using dot-separated keys.
// For example, key "errors.messages.blank" walks m["errors"]["messages"]["blank"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// flatten collects the dotted keys of all string leaves.
func flatten(prefix string, m map[string]any, out *[]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		*out = append(*out, key)
	}
}
