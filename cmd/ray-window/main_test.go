package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ray-caster/input"
)

func TestLoadSettingsAppliesKeyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := "[keys]\nk = \"forward\"\nx = \"quit\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, b, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if !slices.Contains(b.Move[input.IntentForward], ebiten.KeyK) {
		t.Errorf("Expected K bound to forward, got %v", b.Move[input.IntentForward])
	}
	if !slices.Contains(b.Quit, ebiten.KeyX) {
		t.Errorf("Expected X bound to quit, got %v", b.Quit)
	}
	if !slices.Contains(b.Move[input.IntentForward], ebiten.KeyW) {
		t.Error("Expected default W binding kept")
	}
}

func TestLoadSettingsDefaultBindings(t *testing.T) {
	s, b, err := loadSettings("")
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Grid == nil || len(b.Quit) != 2 {
		t.Errorf("Expected defaults, got grid=%v quit=%v", s.Grid, b.Quit)
	}
}
