package analyzer

import "sync"

// Registry caches one Analyzer per canonical locale tag. Analyzers are
// built lazily on first use and shared read-only afterwards; building the
// segmentation strategies dominates the cost of short calls, so per-request
// construction is never worthwhile.
type Registry struct {
	mu            sync.RWMutex
	analyzers     map[string]*Analyzer
	defaultLocale string
}

// NewRegistry creates a Registry whose empty-locale lookups resolve to
// defaultLocale. An empty defaultLocale falls back to DefaultLocale.
func NewRegistry(defaultLocale string) *Registry {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return &Registry{
		analyzers:     make(map[string]*Analyzer),
		defaultLocale: defaultLocale,
	}
}

// Get returns the analyzer for the given locale, building it on first use.
// Lookups are canonicalized, so "en-us" and "en-US" share one instance.
// An empty locale resolves to the registry default.
func (r *Registry) Get(locale string) *Analyzer {
	if locale == "" {
		locale = r.defaultLocale
	}

	r.mu.RLock()
	if a, ok := r.analyzers[locale]; ok {
		r.mu.RUnlock()
		return a
	}
	r.mu.RUnlock()

	a := New(locale)

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have built it meanwhile; key by the canonical
	// tag and also by the requested spelling so repeat lookups stay on the
	// fast path.
	if existing, ok := r.analyzers[a.Locale()]; ok {
		r.analyzers[locale] = existing
		return existing
	}
	r.analyzers[a.Locale()] = a
	r.analyzers[locale] = a
	return a
}

// DefaultLocale returns the locale used for empty lookups.
func (r *Registry) DefaultLocale() string {
	return r.defaultLocale
}

// Locales returns the canonical locale tags with a built analyzer.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[*Analyzer]bool, len(r.analyzers))
	out := make([]string, 0, len(r.analyzers))
	for _, a := range r.analyzers {
		if !seen[a] {
			seen[a] = true
			out = append(out, a.Locale())
		}
	}
	return out
}
