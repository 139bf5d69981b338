package source

import (
	"fmt"
	"log/slog"
	"sort"

	"ProfileScout/internal/ports"
)

// Spec describes one configured provider instance: which factory builds
// it, its lookup priority for deduplication tie-breaks, and free-form
// provider options.
type Spec struct {
	Name     string
	Kind     string
	Priority int
	Options  map[string]string
}

// Factory builds a ContentSource from its spec.
type Factory func(spec Spec, logger *slog.Logger) (ports.ContentSource, error)

// Registry keeps a mapping from provider kinds to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds or replaces a provider factory for a kind.
func (r *Registry) Register(kind string, factory Factory) {
	if r.factories == nil {
		r.factories = map[string]Factory{}
	}
	r.factories[kind] = factory
}

// Build resolves each spec to a concrete source. Sources come out ordered
// by priority (lower value first, configuration order on equal priorities),
// so deduplication tie-breaks downstream honor the configured priorities.
// An unknown kind is a configuration error and fails loudly rather than
// being skipped.
func (r *Registry) Build(specs []Spec, logger *slog.Logger) ([]ports.ContentSource, error) {
	ordered := make([]Spec, len(specs))
	copy(ordered, specs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	sources := make([]ports.ContentSource, 0, len(ordered))
	for _, spec := range ordered {
		factory, ok := r.factories[spec.Kind]
		if !ok {
			return nil, fmt.Errorf("provider kind %q is not registered", spec.Kind)
		}

		src, err := factory(spec, logger.With("component", "provider."+spec.Name))
		if err != nil {
			return nil, fmt.Errorf("build provider %s: %w", spec.Name, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}
