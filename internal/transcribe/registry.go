package transcribe

import (
	"fmt"
	"sort"
	"strings"
)

// Constructor is a function that creates a new Provider instance.
type Constructor func() Provider

var registry = map[string]Constructor{}

// Register adds a provider constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the provider constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown transcription provider: %s", name)
	}
	return ctor, nil
}

// Providers returns the names of all registered providers, sorted.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromNames builds a Chain from registered provider names in the given order.
// Blank names are skipped.
func FromNames(names []string) (*Chain, error) {
	var ps []Provider
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		ctor, err := Get(n)
		if err != nil {
			return nil, err
		}
		ps = append(ps, ctor())
	}
	return NewChain(ps...), nil
}
