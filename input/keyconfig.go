package input

import (
	"fmt"
	"strings"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Bind applies config overrides of the form key name -> action name
// Single characters and aliases bind runes, other names must be special keys; action "none" unbinds
func (kt *KeyTable) Bind(bindings map[string]string) error {
	for keyStr, action := range bindings {
		intent, ok := IntentByName(strings.ToLower(strings.TrimSpace(action)))
		if !ok {
			return fmt.Errorf("key %q: unknown action %q", keyStr, action)
		}

		if r, ok := runeAliases[strings.ToLower(keyStr)]; ok {
			set(kt.Runes, r, intent)
			continue
		}
		if runes := []rune(keyStr); len(runes) == 1 {
			set(kt.Runes, runes[0], intent)
			continue
		}

		k, ok := KeyByName(strings.ToLower(keyStr))
		if !ok {
			return fmt.Errorf("unknown key name: %q", keyStr)
		}
		set(kt.Keys, k, intent)
	}
	return nil
}

func set[K comparable](m map[K]Intent, k K, intent Intent) {
	if intent == IntentNone {
		delete(m, k)
		return
	}
	m[k] = intent
}
