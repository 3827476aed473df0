package tui

import (
	"fmt"

	"github.com/seamusw/cubelet"

	"github.com/seamusw/cubelet/internal/config"
)

// defaultKeys returns the built-in key map: lowercase letters apply the
// base move, uppercase the inverse.
func defaultKeys() map[string]cubelet.Move {
	keys := make(map[string]cubelet.Move, 18)
	for _, letter := range []string{"r", "l", "b", "f", "u", "d", "x", "y", "z"} {
		move, err := cubelet.ParseMove(letter)
		if err != nil {
			panic(fmt.Sprintf("tui: bad builtin binding %q: %v", letter, err))
		}
		keys[letter] = move
		upper := string(letter[0] - 'a' + 'A')
		keys[upper] = move.Inverse()
	}
	return keys
}

// keyMap builds the effective key map from the built-ins plus the config
// overrides. Config bindings are validated at load time; an unparsable one
// here is a programming error.
func keyMap(cfg config.Config) map[string]cubelet.Move {
	keys := defaultKeys()
	for key, notation := range cfg.Keys {
		move, err := cubelet.ParseMove(notation)
		if err != nil {
			panic(fmt.Sprintf("tui: bad config binding %q=%q: %v", key, notation, err))
		}
		keys[key] = move
	}
	return keys
}
