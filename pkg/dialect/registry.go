package dialect

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[core.SQLDialect]*Dialect)
)

// Get returns a dialect by name.
func Get(name core.SQLDialect) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[name]
	return d, ok
}

// Lookup is Get with an UnsupportedConstruct error for unregistered dialects.
func Lookup(name core.SQLDialect) (*Dialect, error) {
	d, ok := Get(name)
	if !ok {
		return nil, core.Errorf(core.UnsupportedConstruct, nil, core.ErrMsgNoDialect, name)
	}
	return d, nil
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[d.Name] = d
}

// List returns all registered dialect names (sorted).
func List() []core.SQLDialect {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]core.SQLDialect, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
