package rematch

import (
	"sync"

	"github.com/maypok86/otter/v2"
)

// defaultRegistry backs the package-level convenience functions. It is
// unbounded: entries persist for the process lifetime.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by the package-level
// functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// cacheKey is the configured-store key. The plain store uses the pattern
// text alone, so default-config lookups never hash a Config.
type cacheKey struct {
	pattern string
	cfg     Config
}

// Registry caches compiled patterns. It holds two independent concurrent
// stores: one keyed by pattern text for default-config compiles, and one
// keyed by (pattern, Config).
//
// Lookups require no external locking. On a miss the caller's goroutine
// builds the handle and inserts it if still absent; two goroutines racing
// on the same key may both build, but only one result is published and
// the loser adopts it. Published handles are never replaced.
//
// The default store is unbounded, which is acceptable only while the
// number of distinct patterns stays small. When pattern text originates
// from untrusted or unbounded input, construct the registry with
// WithCapacity to bound it.
type Registry struct {
	plain      store[string]
	configured store[cacheKey]
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithCapacity bounds each of the registry's two stores to at most n
// entries, evicting cold patterns once the bound is reached.
func WithCapacity(n int) RegistryOption {
	return func(r *Registry) {
		r.plain = newBoundedStore[string](n)
		r.configured = newBoundedStore[cacheKey](n)
	}
}

// NewRegistry returns a registry with unbounded stores unless an option
// says otherwise.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		plain:      &unboundedStore[string]{},
		configured: &unboundedStore[cacheKey]{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Compile returns the cached handle for the pattern and optional config,
// compiling it with automatic engine selection on a miss.
func (r *Registry) Compile(pattern string, config ...Config) (*Pattern, error) {
	if len(config) == 0 || config[0] == (Config{}) {
		return compileVia(r.plain, pattern, pattern, Config{})
	}
	cfg := config[0]
	return compileVia(r.configured, cacheKey{pattern: pattern, cfg: cfg}, pattern, cfg)
}

// CompileWithBackend compiles with exactly the requested backend. Forced
// compiles bypass the registry stores: the cache keys are backend-agnostic
// and must keep pointing at automatically selected handles.
func (r *Registry) CompileWithBackend(pattern string, kind Backend, config ...Config) (*Pattern, error) {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	return newPatternWithKind(pattern, cfg, kind)
}

// IsMatch reports whether the pattern matches text starting at offset 0.
func (r *Registry) IsMatch(pattern, text string, config ...Config) (bool, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return false, err
	}
	return p.IsMatch(text)
}

// IsSearch reports whether the pattern occurs anywhere in text.
func (r *Registry) IsSearch(pattern, text string, config ...Config) (bool, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return false, err
	}
	return p.IsSearch(text)
}

// Match returns capture spans for a match starting at offset 0, or nil if
// the pattern does not match there.
func (r *Registry) Match(pattern, text string, config ...Config) (*Match, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return nil, err
	}
	return p.Match(text)
}

// Search returns capture spans for the leftmost occurrence of the pattern
// in text, or nil if there is none.
func (r *Registry) Search(pattern, text string, config ...Config) (*Match, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return nil, err
	}
	return p.Search(text)
}

// Find returns the span of the leftmost match, or nil if there is none.
func (r *Registry) Find(pattern, text string, config ...Config) (*Span, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return nil, err
	}
	return p.Find(text)
}

// FindAll returns all non-overlapping matched substrings. If n > 0, at
// most n matches are returned.
func (r *Registry) FindAll(pattern, text string, n int, config ...Config) ([]string, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return nil, err
	}
	return p.FindAll(text, n)
}

// Sub returns text with every match of the pattern replaced by repl.
func (r *Registry) Sub(pattern, text, repl string, config ...Config) (string, error) {
	p, err := r.Compile(pattern, config...)
	if err != nil {
		return "", err
	}
	return p.Sub(text, repl)
}

func compileVia[K comparable](s store[K], key K, pattern string, cfg Config) (*Pattern, error) {
	if p, ok := s.load(key); ok {
		return p, nil
	}
	p, err := newPattern(pattern, cfg)
	if err != nil {
		return nil, err
	}
	// Insert-if-absent: a racing goroutine may have published first, in
	// which case our build is discarded and the published handle wins.
	published, _ := s.loadOrStore(key, p)
	return published, nil
}

// store is the registry's backing map. Implementations must be safe for
// concurrent use and must never replace a published value.
type store[K comparable] interface {
	load(key K) (*Pattern, bool)
	loadOrStore(key K, p *Pattern) (*Pattern, bool)
}

// unboundedStore keeps every entry for the process lifetime.
type unboundedStore[K comparable] struct {
	m sync.Map
}

func (s *unboundedStore[K]) load(key K) (*Pattern, bool) {
	v, ok := s.m.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*Pattern), true
}

func (s *unboundedStore[K]) loadOrStore(key K, p *Pattern) (*Pattern, bool) {
	v, loaded := s.m.LoadOrStore(key, p)
	return v.(*Pattern), !loaded
}

// boundedStore evicts cold entries once capacity is reached.
type boundedStore[K comparable] struct {
	c *otter.Cache[K, *Pattern]
}

func newBoundedStore[K comparable](n int) *boundedStore[K] {
	return &boundedStore[K]{
		c: otter.Must(&otter.Options[K, *Pattern]{MaximumSize: n}),
	}
}

func (s *boundedStore[K]) load(key K) (*Pattern, bool) {
	return s.c.GetIfPresent(key)
}

func (s *boundedStore[K]) loadOrStore(key K, p *Pattern) (*Pattern, bool) {
	if cur, inserted := s.c.SetIfAbsent(key, p); !inserted && cur != nil {
		return cur, false
	}
	return p, true
}
