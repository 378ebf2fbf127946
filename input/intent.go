// Package input maps host key presses to host-independent intents
package input

// Intent is a semantic host action
type Intent uint8

const (
	IntentNone  Intent = iota
	IntentQuit         // q, Esc, Ctrl+C
	IntentPause        // p, Space
	IntentTheme        // t
	IntentDebug        // d
	IntentSound        // s
	IntentHUD          // h
)

var intentNames = [...]string{
	IntentNone:  "none",
	IntentQuit:  "quit",
	IntentPause: "pause",
	IntentTheme: "theme",
	IntentDebug: "debug",
	IntentSound: "sound",
	IntentHUD:   "hud",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// IntentByName resolves an action name as used in the [keys] config section
func IntentByName(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return IntentNone, false
}
