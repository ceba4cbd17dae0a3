package main

import (
	"os"
	"path/filepath"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not written: %v", err)
	}
	if cfg.Video.WindowTitle != "Dansvloer" {
		t.Errorf("WindowTitle = %q", cfg.Video.WindowTitle)
	}
	if cfg.Video.WindowWidth != 960 || cfg.Video.WindowHeight != 720 {
		t.Errorf("window = %dx%d, want 960x720", cfg.Video.WindowWidth, cfg.Video.WindowHeight)
	}
	if cfg.Camera.FOV != 42 {
		t.Errorf("FOV = %v, want 42", cfg.Camera.FOV)
	}
	if cfg.Sound.SampleRate != 44100 {
		t.Errorf("SampleRate = %v, want 44100", cfg.Sound.SampleRate)
	}
}

func TestLoadConfigUserOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	ini := "[Video]\nWindowWidth = 1280\n[Sound]\nMute = 1\n"
	if err := os.WriteFile(path, []byte(ini), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Video.WindowWidth != 1280 {
		t.Errorf("WindowWidth = %d, want the override 1280", cfg.Video.WindowWidth)
	}
	if !cfg.Sound.Mute {
		t.Error("Mute override lost")
	}
	// Untouched keys keep the embedded defaults.
	if cfg.Video.WindowHeight != 720 {
		t.Errorf("WindowHeight = %d, want default 720", cfg.Video.WindowHeight)
	}
}

func TestVec3ZeroFillsShortInput(t *testing.T) {
	if got := vec3([]float64{1, 2}); got != (mgl.Vec3{1, 2, 0}) {
		t.Errorf("vec3 short input = %v", got)
	}
	if got := vec3([]float64{1, 2, 3, 4}); got != (mgl.Vec3{1, 2, 3}) {
		t.Errorf("vec3 long input = %v", got)
	}
}
