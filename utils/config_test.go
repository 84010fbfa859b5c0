package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"rows": 8, "cols": 12, "pattern": "glider", "frame_rate": 1000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Rows != 8 || config.Cols != 12 {
		t.Fatalf("expected 8x12, got %dx%d", config.Rows, config.Cols)
	}
	if config.Pattern != "glider" {
		t.Fatalf("expected glider pattern, got %q", config.Pattern)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("expected 1ms frame rate, got %v", config.FrameRate)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatalf("unset fields should keep their defaults")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{"rows": `)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero rows":        `{"rows": 0}`,
		"negative cols":    `{"cols": -3}`,
		"density above 1":  `{"random_density": 1.5}`,
		"negative max gen": `{"max_generations": -1}`,
		"zero threshold":   `{"stagnation_threshold": 0}`,
		"negative frames":  `{"frame_rate": -5}`,
		"negative refresh": `{"refresh_interval": -1}`,
	}
	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, contents))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestStats_Update(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 500*time.Millisecond)
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("expected 2 gen/sec, got %v", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Fatalf("expected first sample to seed the average, got %v", s.AveragePopulation)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("expected moving average 110, got %v", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 || s.TotalGenerations != 2 {
		t.Fatalf("zero duration should keep the last rate, got %+v", s)
	}
}

func TestStats_ZeroPopulationDoesNotReseed(t *testing.T) {
	s := NewStats()
	s.Update(1, 0, time.Second)
	if s.AveragePopulation != 0 {
		t.Fatalf("expected an extinct first sample to average 0, got %v", s.AveragePopulation)
	}

	s.Update(2, 100, time.Second)
	if math.Abs(s.AveragePopulation-10) > 1e-9 {
		t.Fatalf("expected the average to move towards 100 from 0, got %v", s.AveragePopulation)
	}
}
