package wayfinder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
)

// Config holds navigation settings for a Scene.
type Config struct {
	// Epsilon is the edge comparison tolerance. 0 means DefaultEpsilon.
	Epsilon float64
	// Keys binds keyboard keys to directions.
	Keys KeyBindings
}

// DefaultConfig returns the default tolerance with arrow key bindings.
func DefaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon, Keys: DefaultKeyBindings()}
}

// configFile is the TOML shape of Config.
//
//	epsilon = 0.001
//	[keys]
//	up = ["ArrowUp", "W"]
type configFile struct {
	Epsilon *float64            `toml:"epsilon"`
	Keys    map[string][]string `toml:"keys"`
}

// LoadConfig parses a TOML configuration. Missing fields keep their
// defaults; a [keys] entry replaces the default bindings for its direction.
func LoadConfig(data []byte) (Config, error) {
	var f configFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := DefaultConfig()
	if f.Epsilon != nil {
		if *f.Epsilon < 0 {
			return Config{}, errors.New("parse config: epsilon must not be negative")
		}
		cfg.Epsilon = *f.Epsilon
	}

	// Sorted so the first reported error is stable.
	names := make([]string, 0, len(f.Keys))
	for name := range f.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dir, ok := ParseCompassDirection(name)
		if !ok {
			return Config{}, fmt.Errorf("parse config: unknown direction %q", name)
		}
		keys, err := parseKeys(f.Keys[name])
		if err != nil {
			return Config{}, fmt.Errorf("parse config: keys.%s: %w", name, err)
		}
		cfg.Keys[dir] = keys
	}
	return cfg, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
