package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
frame_rate: 50ms
width: 20
use_parallel: false
max_generations: 20
seed:
  - pattern: glider
    x: 3
    y: -4
cells:
  - {x: 1, y: 2}
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.FrameRate != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", config.FrameRate)
	}
	if config.UseParallel {
		t.Error("expected use_parallel false")
	}
	if config.Width != 20 || config.Height != DefaultConfig().Height {
		t.Errorf("expected 20x%d view, got %dx%d", DefaultConfig().Height, config.Width, config.Height)
	}
	if config.MaxGenerations != 20 {
		t.Errorf("expected 20 generations, got %d", config.MaxGenerations)
	}
	if len(config.Seeds) != 1 || config.Seeds[0] != (Seed{Pattern: "glider", X: 3, Y: -4}) {
		t.Errorf("unexpected seeds: %+v", config.Seeds)
	}
	if len(config.Cells) != 1 || config.Cells[0] != (Point{X: 1, Y: 2}) {
		t.Errorf("unexpected cells: %+v", config.Cells)
	}
	// untouched fields keep their defaults
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Errorf("expected default stagnation threshold, got %d", config.StagnationThreshold)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"frame_rate": 1000000, "use_memory_pool": false, "cells": [{"x": -1, "y": 0}]}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.FrameRate != time.Millisecond {
		t.Errorf("expected 1ms, got %v", config.FrameRate)
	}
	if config.UseMemoryPool {
		t.Error("expected use_memory_pool false")
	}
	if len(config.Cells) != 1 || config.Cells[0] != (Point{X: -1, Y: 0}) {
		t.Errorf("unexpected cells: %+v", config.Cells)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"bad yaml", func(t *testing.T) string { return writeFile(t, "c.yaml", "seed: [") }},
		{"bad json", func(t *testing.T) string { return writeFile(t, "c.json", "{") }},
		{"zero width", func(t *testing.T) string { return writeFile(t, "c.yaml", "width: 0") }},
		{"negative generations", func(t *testing.T) string { return writeFile(t, "c.yaml", "max_generations: -1") }},
		{"seed without pattern", func(t *testing.T) string { return writeFile(t, "c.yaml", "seed: [{x: 1}]") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if config.FrameRate == 0 {
				t.Error("expected defaults to be returned alongside the error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Errorf("expected defaults to be valid, got %v", err)
	}

	config.StagnationThreshold = 0
	if err := config.Validate(); err == nil {
		t.Error("expected zero stagnation threshold to be rejected")
	}
}

func TestInitialSeeds(t *testing.T) {
	config := DefaultConfig()
	if len(config.InitialSeeds()) == 0 {
		t.Error("expected fallback seeds for an empty config")
	}

	config.Cells = []Point{{X: 0, Y: 0}}
	if n := len(config.InitialSeeds()); n != 0 {
		t.Errorf("expected no fallback seeds when cells are configured, got %d", n)
	}
}
