// Package demos holds the demo windows run by the canopy command.
package demos

import (
	"fmt"
	"sort"

	"github.com/phanxgames/canopy"
)

// Demo is a runnable demo window.
type Demo struct {
	Name        string
	Description string
	Run         func(cfg canopy.RunConfig, env canopy.Env) error
}

var registry = map[string]Demo{}

func register(d Demo) {
	registry[d.Name] = d
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Find returns the demo called name.
func Find(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return Demo{}, fmt.Errorf("unknown demo %q", name)
	}
	return d, nil
}
