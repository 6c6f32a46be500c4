package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
	onces  map[reflect.Type]*sync.Once
}

func newCache() *cache {
	return &cache{
		values: make(map[reflect.Type]any),
		onces:  make(map[reflect.Type]*sync.Once),
	}
}

func (c *cache) get(t reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[t]
	return v, ok
}

func (c *cache) once(t reflect.Type) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	once, ok := c.onces[t]
	if !ok {
		once = new(sync.Once)
		c.onces[t] = once
	}
	return once
}

func (c *cache) store(t reflect.Type, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[t] = v
}

func (c *cache) forget(t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, t)
	delete(c.onces, t)
}

var (
	globalCache      = newCache()
	defaultEnvLoaded sync.Once
)

// LoadEnv loads variables from the given .env files, or from ./.env when no
// path is given. Files are applied in order and override variables that are
// already set, so later files win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
//
// The first call also loads ./.env when it exists. Each configuration type is
// parsed once; later calls copy the cached value into v.
//
//	type Config struct {
//		LogLevel string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	t := typeOf[T]()
	if cached, ok := globalCache.get(t); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	globalCache.once(t).Do(func() {
		var parsed T
		if parseErr := env.Parse(&parsed); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		globalCache.store(t, parsed)
	})
	if err != nil {
		// Allow a later call to retry once the environment is fixed.
		globalCache.forget(t)
		return err
	}

	cached, ok := globalCache.get(t)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value of T and parses the environment again.
func ForceReload[T any](v *T) error {
	globalCache.forget(typeOf[T]())
	return Load(v)
}

// Reset clears every cached configuration. Intended for tests.
func Reset() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.onces = make(map[reflect.Type]*sync.Once)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
