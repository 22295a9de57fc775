// Package registry provides a global registry for display host factories.
// Hosts register themselves in init() functions, allowing the command line
// to pick a host by name from configuration without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// HostInfo contains metadata about a registered host.
type HostInfo struct {
	Name        string
	Description string
}

// Factory creates a host for the given configuration.
type Factory func(cfg config.Config) (core.Host, error)

type entry struct {
	factory     Factory
	description string
}

var (
	hosts = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a host factory to the registry.
// Typically called from a host package's init() function.
// Panics if a host with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := hosts[name]; exists {
		panic(fmt.Sprintf("registry: host %q already registered", name))
	}
	hosts[name] = entry{factory: f, description: description}
}

// List returns information about all registered hosts, sorted by name.
func List() []HostInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HostInfo, 0, len(hosts))
	for name, e := range hosts {
		result = append(result, HostInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds the host named in cfg.Host.Name.
// Returns an error if no such host is registered or the factory fails.
func Create(cfg config.Config) (core.Host, error) {
	name := cfg.Host.Name

	mu.RLock()
	e, ok := hosts[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown host %q", name)
	}

	h, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: creating host %q: %w", name, err)
	}
	return h, nil
}

// Exists checks if a host with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := hosts[name]
	return ok
}
