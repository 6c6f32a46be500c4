package messages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"sync"
)

// Catalog holds message templates addressed by dotted keys.
// It is safe for concurrent use.
type Catalog struct {
	mu             sync.RWMutex
	data           map[string]any
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// New creates a catalog from the built-in defaults merged with the templates
// loaded by adapter. A nil adapter yields the defaults only.
func New(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	c := newCatalog(opts...)

	if adapter == nil {
		return c, nil
	}

	data, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	merge(c.data, normalize(data))

	c.logger.DebugContext(ctx, "message catalog loaded", slog.Int("keys", len(c.Keys())))
	return c, nil
}

// Default returns a catalog holding the built-in defaults only.
func Default(opts ...Option) *Catalog {
	return newCatalog(opts...)
}

func newCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		data:          Defaults(),
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Has checks if a string template exists for key.
func (c *Catalog) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, ok := lookup(c.data, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// Keys returns the sorted dotted keys of every template in the catalog.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, 32)
	flatten("", c.data, &keys)
	sort.Strings(keys)
	return keys
}

// Set stores a single template under key, creating intermediate levels.
func (c *Catalog) Set(key, template string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	merge(c.data, nest(key, template))
}

// Lookup returns the template stored under key with %{name} placeholders
// replaced from values.
//
// When the key is missing the key itself is returned (interpolated), unless
// fallback is disabled, in which case the result is an empty string.
func (c *Catalog) Lookup(key string, values map[string]any) string {
	c.mu.RLock()
	val, ok := lookup(c.data, key)
	c.mu.RUnlock()

	if ok {
		switch v := val.(type) {
		case string:
			return Interpolate(v, values)
		case fmt.Stringer:
			return Interpolate(v.String(), values)
		}
	}

	if c.missingLogMode {
		c.logger.Warn("message template not found", slog.String("key", key))
	}
	if c.fallbackToKey {
		return Interpolate(key, values)
	}
	return ""
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate substitutes %{name} placeholders with values[name].
// Unknown placeholders are kept as-is.
func Interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// nest turns "a.b.c" into {"a": {"b": {"c": value}}}.
func nest(key string, value any) map[string]any {
	root := make(map[string]any)
	current := root

	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] != '.' {
			continue
		}
		next := make(map[string]any)
		current[key[start:i]] = next
		current = next
		start = i + 1
	}
	current[key[start:]] = value

	return root
}
