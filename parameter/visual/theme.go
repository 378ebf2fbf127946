package visual

import "fmt"

// Theme names a palette
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme validates a theme name, empty selects dark
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case "", ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Palette returns the palette for the theme
func (t Theme) Palette() *Palette {
	if t == ThemeLight {
		return &Light
	}
	return &Dark
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
