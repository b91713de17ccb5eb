package canopy

import (
	"fmt"
	"image/color"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Env is the immutable configuration passed alongside data through every
// pass. Derive new environments with With, WithValue and Merge; the receiver
// is never modified.
//
// Two Envs are Same when they share storage, so an unchanged Env never
// triggers an update pass.
type Env struct {
	vals *envValues
}

type envValues struct {
	m map[string]any
}

// EnvKey is a typed key with the value returned when the key is absent or
// holds a value of the wrong type.
type EnvKey[V any] struct {
	Name    string
	Default V
}

// NewEnvKey declares a key.
func NewEnvKey[V any](name string, def V) EnvKey[V] {
	return EnvKey[V]{Name: name, Default: def}
}

// Same reports whether e and other share storage.
func (e Env) Same(other Env) bool {
	return e.vals == other.vals
}

// Lookup returns the raw value stored under name.
func (e Env) Lookup(name string) (any, bool) {
	if e.vals == nil {
		return nil, false
	}
	v, ok := e.vals.m[name]
	return v, ok
}

// Len returns the number of stored keys.
func (e Env) Len() int {
	if e.vals == nil {
		return 0
	}
	return len(e.vals.m)
}

// With returns a copy of e with name set to v.
func (e Env) With(name string, v any) Env {
	m := make(map[string]any, e.Len()+1)
	if e.vals != nil {
		maps.Copy(m, e.vals.m)
	}
	m[name] = v
	return Env{vals: &envValues{m: m}}
}

// Merge returns a copy of e overlaid with every key in other.
func (e Env) Merge(other Env) Env {
	if other.Len() == 0 {
		return e
	}
	m := make(map[string]any, e.Len()+other.Len())
	if e.vals != nil {
		maps.Copy(m, e.vals.m)
	}
	maps.Copy(m, other.vals.m)
	return Env{vals: &envValues{m: m}}
}

// WithValue returns a copy of env with key set to v.
func WithValue[V any](env Env, key EnvKey[V], v V) Env {
	return env.With(key.Name, v)
}

// EnvValue reads key from env, converting YAML scalars where sensible
// (integers to floats, "#rrggbb" strings to colors).
func EnvValue[V any](env Env, key EnvKey[V]) V {
	raw, ok := env.Lookup(key.Name)
	if !ok {
		return key.Default
	}
	v, ok := convertEnvValue[V](raw)
	if !ok {
		logger().Debug("env value has unexpected type",
			zap.String("key", key.Name), zap.Any("value", raw))
		return key.Default
	}
	return v
}

func convertEnvValue[V any](raw any) (V, bool) {
	if v, ok := raw.(V); ok {
		return v, true
	}
	var out V
	switch p := any(&out).(type) {
	case *float64:
		switch n := raw.(type) {
		case int:
			*p = float64(n)
			return out, true
		case int64:
			*p = float64(n)
			return out, true
		case float32:
			*p = float64(n)
			return out, true
		}
	case *int:
		if f, ok := raw.(float64); ok && f == float64(int(f)) {
			*p = int(f)
			return out, true
		}
	case *color.RGBA:
		if s, ok := raw.(string); ok {
			if c, err := ParseHexColor(s); err == nil {
				*p = c
				return out, true
			}
		}
	case *color.Color:
		if s, ok := raw.(string); ok {
			if c, err := ParseHexColor(s); err == nil {
				*p = c
				return out, true
			}
		}
	}
	return out, false
}

// LoadEnv decodes a flat YAML mapping into an Env.
//
//	label.color: "#e0e0e0"
//	text.size: 14
func LoadEnv(r io.Reader) (Env, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF {
			return Env{}, nil
		}
		return Env{}, fmt.Errorf("canopy: failed to parse env YAML: %w", err)
	}
	if len(m) == 0 {
		return Env{}, nil
	}
	return Env{vals: &envValues{m: m}}, nil
}

// LoadEnvFile reads an Env from a YAML file.
func LoadEnvFile(path string) (Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return Env{}, fmt.Errorf("canopy: open env file: %w", err)
	}
	defer f.Close()
	return LoadEnv(f)
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("canopy: invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("canopy: invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
