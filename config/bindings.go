package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// bindingsFile is the on-disk layout of a key rebinding file:
//
//	bindings:
//	  attack: [J, F]
//	  shield: [Space]
type bindingsFile struct {
	Bindings map[string][]string `yaml:"bindings"`
}

var keysByName map[string]ebiten.Key

func init() {
	keysByName = make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keysByName[strings.ToLower(k.String())] = k
	}
}

// ParseBindings decodes a YAML bindings document into keyboard overrides.
// Action and key names are case-insensitive.
func ParseBindings(data []byte) (map[ActionID][]ebiten.Key, error) {
	var file bindingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}

	overrides := make(map[ActionID][]ebiten.Key, len(file.Bindings))
	for name, keyNames := range file.Bindings {
		action, ok := actionNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, keyName := range keyNames {
			key, ok := keysByName[strings.ToLower(keyName)]
			if !ok {
				return nil, fmt.Errorf("action %q: unknown key %q", name, keyName)
			}
			keys = append(keys, key)
		}
		overrides[action] = keys
	}
	return overrides, nil
}

// LoadBindings reads and parses a bindings file.
func LoadBindings(path string) (map[ActionID][]ebiten.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings %s: %w", path, err)
	}
	return ParseBindings(data)
}

// ApplyKeys replaces the keyboard keys of every overridden action.
// Gamepad buttons are left untouched.
func (c *InputConfig) ApplyKeys(overrides map[ActionID][]ebiten.Key) {
	for action, keys := range overrides {
		binding := c.Bindings[action]
		binding.Keys = keys
		c.Bindings[action] = binding
	}
}
