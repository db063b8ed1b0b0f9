// Package store defines the contract kvsmoke drives embedded key-value
// engines through. The engines themselves are external; an adapter only
// maps this contract onto the engine's own API.
package store

import (
	"fmt"
	"sort"
	"sync"
)

// Store is the lifecycle surface of an embedded key-value engine.
type Store interface {
	// Put writes a key/value pair.
	Put(key, value []byte) error
	// Flush forces buffered writes to stable storage.
	Flush() error
	// Close releases the store. Closing an already-closed store is a no-op.
	Close() error
	// IsOpen reports whether the store is usable.
	IsOpen() bool
}

// Tuning is a low-level hook applied to engine options at open time. The
// concrete type passed depends on the engine; adapters document theirs.
type Tuning func(options interface{})

// Config carries what an engine needs to open.
type Config struct {
	// BaseDir is an existing folder the engine may create its files under.
	BaseDir string
	// Tuning is an optional low-level tuning hook.
	Tuning Tuning
}

// Opener opens a store in the folder named by cfg.BaseDir.
type Opener func(cfg Config) (Store, error)

var (
	mu      sync.Mutex
	openers = make(map[string]Opener)
)

// Register makes an engine available under the given name. Engine adapters
// call this from their init functions.
func Register(name string, opener Opener) {
	mu.Lock()
	defer mu.Unlock()
	openers[name] = opener
}

// Open opens the named engine in the folder named by cfg.BaseDir.
func Open(engine string, cfg Config) (Store, error) {
	mu.Lock()
	opener, ok := openers[engine]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (registered: %v)", engine, Engines())
	}
	return opener(cfg)
}

// Engines returns the registered engine names in sorted order.
func Engines() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
