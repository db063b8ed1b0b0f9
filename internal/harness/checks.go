package harness

import (
	"bytes"
	"fmt"
	"strings"

	"kvsmoke/internal/domain"
	"kvsmoke/internal/store"
)

// Env gives a check what it needs to talk to the engine under test. Checks
// that close and reopen the store must leave the current handle in
// env.Store so the runner can tear it down.
type Env struct {
	Store     store.Store
	Engine    string
	OutputDir string

	// Reopen opens a fresh handle on the same folder.
	Reopen func() (store.Store, error)

	log strings.Builder
}

// Logf appends a line to the check's captured output.
func (e *Env) Logf(format string, args ...interface{}) {
	fmt.Fprintf(&e.log, format+"\n", args...)
}

// CheckFunc runs one lifecycle check against an open store.
type CheckFunc func(env *Env) error

type registeredCheck struct {
	domain.Check
	run CheckFunc
}

// The smoke suite. Order is the listing order; execution order depends on
// worker scheduling.
var checks = []registeredCheck{
	{domain.Check{Name: "open", Description: "Store opens and reports open"}, checkOpen},
	{domain.Check{Name: "put", Description: "Single key/value write succeeds"}, checkPut},
	{domain.Check{Name: "put-overwrite", Description: "Rewriting a key succeeds"}, checkPutOverwrite},
	{domain.Check{Name: "put-empty-value", Description: "Empty value is accepted"}, checkPutEmptyValue},
	{domain.Check{Name: "put-large-value", Description: "1 MiB value is accepted"}, checkPutLargeValue},
	{domain.Check{Name: "flush", Description: "Flush after writes succeeds"}, checkFlush},
	{domain.Check{Name: "close", Description: "Close transitions to closed and is idempotent"}, checkClose},
	{domain.Check{Name: "reopen", Description: "Store reopens in the same folder"}, checkReopen},
}

// Checks returns the registered smoke checks in listing order.
func Checks() []domain.Check {
	out := make([]domain.Check, len(checks))
	for i, c := range checks {
		out[i] = c.Check
	}
	return out
}

// lookup finds a registered check by name.
func lookup(name string) (registeredCheck, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c, true
		}
	}
	return registeredCheck{}, false
}

func checkOpen(env *Env) error {
	if !env.Store.IsOpen() {
		return fmt.Errorf("store reports closed right after open")
	}
	env.Logf("store open in %s", env.OutputDir)
	return nil
}

func checkPut(env *Env) error {
	return env.Store.Put([]byte("key"), []byte("Hello World!"))
}

func checkPutOverwrite(env *Env) error {
	if err := env.Store.Put([]byte("key"), []byte("first")); err != nil {
		return fmt.Errorf("first write: %w", err)
	}
	if err := env.Store.Put([]byte("key"), []byte("second")); err != nil {
		return fmt.Errorf("overwrite: %w", err)
	}
	return nil
}

func checkPutEmptyValue(env *Env) error {
	return env.Store.Put([]byte("key"), []byte{})
}

func checkPutLargeValue(env *Env) error {
	value := bytes.Repeat([]byte{0xAB}, 1<<20)
	return env.Store.Put([]byte("large"), value)
}

func checkFlush(env *Env) error {
	if err := env.Store.Put([]byte("key"), []byte("flushed")); err != nil {
		return fmt.Errorf("write before flush: %w", err)
	}
	return env.Store.Flush()
}

func checkClose(env *Env) error {
	if err := env.Store.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if env.Store.IsOpen() {
		return fmt.Errorf("store reports open after close")
	}
	// Second close must be a no-op
	if err := env.Store.Close(); err != nil {
		return fmt.Errorf("second close: %w", err)
	}
	return nil
}

func checkReopen(env *Env) error {
	if err := env.Store.Put([]byte("k"), []byte("v")); err != nil {
		return fmt.Errorf("write before reopen: %w", err)
	}
	if err := env.Store.Close(); err != nil {
		return fmt.Errorf("close before reopen: %w", err)
	}

	reopened, err := env.Reopen()
	if err != nil {
		return fmt.Errorf("reopen: %w", err)
	}
	env.Store = reopened

	if !reopened.IsOpen() {
		return fmt.Errorf("store reports closed after reopen")
	}
	env.Logf("reopened store in %s", env.OutputDir)
	return nil
}
