package input

import "maps"

// Key is a non-printable key, hosts translate their own key codes to it
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyCtrlC
)

var keyNames = map[string]Key{
	"esc":    KeyEscape,
	"escape": KeyEscape,
	"enter":  KeyEnter,
	"tab":    KeyTab,
	"ctrl+c": KeyCtrlC,
}

// KeyByName resolves a lowercase key name
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// KeyTable maps keys and runes to intents
type KeyTable struct {
	Keys  map[Key]Intent
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[Key]Intent{
			KeyEscape: IntentQuit,
			KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'p': IntentPause,
			' ': IntentPause,
			't': IntentTheme,
			'd': IntentDebug,
			's': IntentSound,
			'h': IntentHUD,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key press; k is KeyNone for printable runes
func (kt *KeyTable) Lookup(k Key, r rune) Intent {
	if k != KeyNone {
		return kt.Keys[k]
	}
	return kt.Runes[r]
}
