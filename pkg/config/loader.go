package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache holds one parsed value per configuration type. A type whose
// parse failed has no entry, so the next Load tries again.
type typeCache struct {
	mu      sync.Mutex
	values  map[reflect.Type]any
	loading map[reflect.Type]*sync.Mutex
}

var (
	cache = newTypeCache()

	dotenvOnce sync.Once
)

func newTypeCache() *typeCache {
	return &typeCache{
		values:  make(map[reflect.Type]any),
		loading: make(map[reflect.Type]*sync.Mutex),
	}
}

// lock returns the per-type mutex that serializes parsing of typ.
func (c *typeCache) lock(typ reflect.Type) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.loading[typ]
	if !ok {
		m = new(sync.Mutex)
		c.loading[typ] = m
	}
	return m
}

func (c *typeCache) get(typ reflect.Type) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[typ]
	return v, ok
}

func (c *typeCache) put(typ reflect.Type, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[typ] = v
}

// Load parses environment variables into v using its `env` struct tags.
// Each configuration type is parsed once; later calls for the same type copy
// the cached value. A .env file in the working directory is loaded on first
// use when present.
//
// Example:
//
//	var s config.Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.get(typ); ok {
		*v = cached.(T)
		return nil
	}

	m := cache.lock(typ)
	m.Lock()
	defer m.Unlock()

	// another caller may have finished while we waited
	if cached, ok := cache.get(typ); ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.put(typ, parsed)
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %s: %v", reflect.TypeFor[T](), err))
	}
}

// Parse fills v from environ alone, bypassing the process environment and
// the cache.
func Parse[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads the given .env files into the process environment. Variables
// already set are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
