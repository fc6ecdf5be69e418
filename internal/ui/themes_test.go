package ui

import "testing"

// Theme state is package-global, so these tests run sequentially and restore
// the active theme when done.

func TestSetTheme(t *testing.T) {
	restore := GetCurrentTheme()
	defer SetCurrentTheme(restore)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"orange", "orange"},
		{"none", "none"},
		{"ultraviolet", "dark"},
		{"", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): active theme = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	restore := GetCurrentTheme()
	defer SetCurrentTheme(restore)

	t.Run("named theme", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		InitTheme("light", false)
		if got := GetCurrentTheme().Name; got != "light" {
			t.Errorf("active theme = %q, want light", got)
		}
	})

	t.Run("noColor flag wins over name", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		InitTheme("orange", true)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("active theme = %q, want none", got)
		}
	})

	t.Run("NO_COLOR env wins over name", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		InitTheme("dark", false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("active theme = %q, want none", got)
		}
	})

	t.Run("empty NO_COLOR does not disable colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		InitTheme("dark", false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("active theme = %q, want dark", got)
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	restore := GetCurrentTheme()
	defer SetCurrentTheme(restore)

	SetCurrentTheme(NoColorTheme)
	if got := GetCurrentTUITheme(); got != NoColorTUITheme {
		t.Error("expected NoColorTUITheme while the none theme is active")
	}

	SetCurrentTheme(DarkTheme)
	if got := GetCurrentTUITheme(); got != DarkTUITheme {
		t.Error("expected DarkTUITheme while a color theme is active")
	}
}

func TestColorAccessors(t *testing.T) {
	restore := GetCurrentTheme()
	defer SetCurrentTheme(restore)

	SetCurrentTheme(DarkTheme)
	accessors := map[string]struct {
		got  string
		want string
	}{
		"red":       {ColorRed(), DarkTheme.Error},
		"green":     {ColorGreen(), DarkTheme.Success},
		"yellow":    {ColorYellow(), DarkTheme.Warning},
		"blue":      {ColorBlue(), DarkTheme.Primary},
		"cyan":      {ColorCyan(), DarkTheme.Info},
		"magenta":   {ColorMagenta(), DarkTheme.Secondary},
		"bold":      {ColorBold(), DarkTheme.Bold},
		"underline": {ColorUnderline(), DarkTheme.Underline},
		"reset":     {ColorReset(), DarkTheme.Reset},
	}
	for name, a := range accessors {
		if a.got == "" {
			t.Errorf("%s accessor returned an empty code under the dark theme", name)
		}
		if a.got != a.want {
			t.Errorf("%s accessor = %q, want %q", name, a.got, a.want)
		}
	}

	SetCurrentTheme(NoColorTheme)
	if ColorRed() != "" || ColorReset() != "" || ColorBold() != "" {
		t.Error("accessors should return empty codes under the none theme")
	}
}
