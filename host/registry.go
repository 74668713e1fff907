package host

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/ggfu"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name. It is meant to be called
// from init() in backend packages:
//
//	func init() {
//	    host.Register("raster", func() host.Backend { return NewBackend() })
//	}
//
// Register panics if factory is nil or name is already taken, so that
// duplicate registrations surface at program start.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("host: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("host: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend instance by registered name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		known := Backends()
		if len(known) == 0 {
			return nil, fmt.Errorf("host: unknown backend %q, none registered (forgotten import?)", name)
		}
		return nil, fmt.Errorf("host: unknown backend %q, have %s (forgotten import?)", name, strings.Join(known, ", "))
	}
	ggfu.LoggerFor("host").Debug("backend created", "name", name)
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend named name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
