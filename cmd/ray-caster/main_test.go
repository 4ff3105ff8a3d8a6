package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-caster/input"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, keys, err := loadSettings("")
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Render.ScreenWidth != 120 || s.Grid.Width() != 16 {
		t.Errorf("Expected default 120-wide screen over 16x16 map, got %d / %d", s.Render.ScreenWidth, s.Grid.Width())
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	if got := keys.Resolve(ev); got != input.IntentForward {
		t.Errorf("Expected default 'w' to move forward, got %v", got)
	}
}

func TestLoadSettingsFileWithKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := "[render]\nshow_stats = true\n\n[keys]\nk = \"forward\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, keys, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if !s.Render.ShowStats {
		t.Error("Expected show_stats from file")
	}
	if got := keys.Resolve(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)); got != input.IntentForward {
		t.Errorf("Expected 'k' bound to forward, got %v", got)
	}
	if got := keys.Resolve(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)); got != input.IntentRotateLeft {
		t.Errorf("Expected defaults kept alongside overrides, got %v", got)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, _, err := loadSettings(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestApplyColorMode(t *testing.T) {
	if _, err := applyColorMode("sepia"); err == nil {
		t.Error("Expected error for unknown color mode")
	}
	styler, err := applyColorMode("mono")
	if err != nil {
		t.Fatalf("applyColorMode: %v", err)
	}
	if styler('█') != tcell.StyleDefault {
		t.Error("Expected mono styler to use the default style")
	}
}
