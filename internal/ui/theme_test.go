package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"daycheck/internal/config"
)

func TestResolveThemeDefaults(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})

	if theme != presets["default-dark"] {
		t.Errorf("empty config should resolve to default-dark, got %+v", theme)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "no-such-theme"})

	if theme != presets["default-dark"] {
		t.Errorf("unknown preset should fall back to default-dark, got %+v", theme)
	}
}

func TestResolveThemePreset(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dracula"})

	if theme.Accent != lipgloss.Color("#BD93F9") {
		t.Errorf("dracula accent = %v, want #BD93F9", theme.Accent)
	}
	if theme.MarkdownStyle != "dark" {
		t.Errorf("dracula markdown style = %q, want dark", theme.MarkdownStyle)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset:        "default-light",
		Accent:        "#FF0000",
		MarkdownStyle: "notty",
	})

	if theme.Accent != lipgloss.Color("#FF0000") {
		t.Errorf("override accent = %v, want #FF0000", theme.Accent)
	}
	if theme.MarkdownStyle != "notty" {
		t.Errorf("override markdown style = %q, want notty", theme.MarkdownStyle)
	}
	// Untouched fields keep the preset values.
	if theme.Primary != presets["default-light"].Primary {
		t.Errorf("primary should come from the preset, got %v", theme.Primary)
	}
}
