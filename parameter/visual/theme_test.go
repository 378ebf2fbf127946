package visual

import "testing"

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", ThemeDark, false},
		{"dark", ThemeDark, false},
		{"light", ThemeLight, false},
		{"solarized", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight {
		t.Errorf("dark should toggle to light")
	}
	if ThemeLight.Toggle() != ThemeDark {
		t.Errorf("light should toggle to dark")
	}
	if ThemeLight.Palette().Background == ThemeDark.Palette().Background {
		t.Errorf("palettes should differ in background")
	}
}
