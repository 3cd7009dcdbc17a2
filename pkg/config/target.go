package config

import (
	"fmt"
	"sort"
	"sync"
)

// QueryTargetConfig defines one executable query target
type QueryTargetConfig struct {
	// Provider type (required)
	Provider TargetProvider `yaml:"provider" validate:"required"`

	// Backend label stamped into capabilities and page cursors; defaults
	// to the provider name
	Backend string `yaml:"backend,omitempty"`

	// Connection string; supports {{.VAR}} expansion
	DSN string `yaml:"dsn,omitempty"`

	// Environment variable holding the connection string; used when DSN is empty
	DSNEnv string `yaml:"dsn_env,omitempty"`

	// Row cap for unpaginated result sets; 0 uses the dispatcher default
	RowLimit int `yaml:"row_limit,omitempty"`

	// Extra tie-breaker columns accepted for keyset ordering
	ExtraTieBreakers []string `yaml:"extra_tie_breakers,omitempty"`

	// Member target names for federated providers
	Members []string `yaml:"members,omitempty"`
}

// QueryTargetRegistry stores query target configurations in memory with thread-safe access
type QueryTargetRegistry struct {
	targets map[string]*QueryTargetConfig
	mu      sync.RWMutex
}

// NewQueryTargetRegistry creates a new query target registry
func NewQueryTargetRegistry(targets map[string]*QueryTargetConfig) *QueryTargetRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*QueryTargetConfig, len(targets))
	for k, v := range targets {
		copied[k] = v
	}
	return &QueryTargetRegistry{
		targets: copied,
	}
}

// Get retrieves a query target configuration by name (thread-safe)
func (r *QueryTargetRegistry) Get(name string) (*QueryTargetConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	target, exists := r.targets[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrQueryTargetNotFound, name)
	}
	return target, nil
}

// GetAll returns all query target configurations (thread-safe, returns copy)
func (r *QueryTargetRegistry) GetAll() map[string]*QueryTargetConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*QueryTargetConfig, len(r.targets))
	for k, v := range r.targets {
		result[k] = v
	}
	return result
}

// Has checks if a query target exists in the registry (thread-safe)
func (r *QueryTargetRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.targets[name]
	return exists
}

// Len returns the number of query targets in the registry (thread-safe)
func (r *QueryTargetRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}

// Names returns a sorted list of all configured query target names
func (r *QueryTargetRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
