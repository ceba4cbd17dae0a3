package main

import (
	_ "embed" // Support for go:embed resources
	"os"

	mgl "github.com/go-gl/mathgl/mgl32"
	"gopkg.in/ini.v1"
)

//go:embed resources/defaultConfig.ini
var defaultConfig []byte

// Config is the top-level configuration structure, mapped from INI.
type Config struct {
	Def   string
	Video struct {
		WindowTitle    string `ini:"WindowTitle"`
		WindowWidth    int    `ini:"WindowWidth"`
		WindowHeight   int    `ini:"WindowHeight"`
		WindowCentered bool   `ini:"WindowCentered"`
		VSync          int    `ini:"VSync"`
		Framerate      int    `ini:"Framerate"`
	} `ini:"Video"`
	Camera struct {
		Eye   []float64 `ini:"Eye" delim:","`
		Focal []float64 `ini:"Focal" delim:","`
		Up    []float64 `ini:"Up" delim:","`
		FOV   float32   `ini:"FOV"`
		Near  float32   `ini:"Near"`
		Far   float32   `ini:"Far"`
	} `ini:"Camera"`
	Lighting struct {
		Direction  []float64 `ini:"Direction" delim:","`
		Diffuse    []float64 `ini:"Diffuse" delim:","`
		Ambient    []float64 `ini:"Ambient" delim:","`
		Background []float64 `ini:"Background" delim:","`
	} `ini:"Lighting"`
	Sound struct {
		SampleRate int  `ini:"SampleRate"`
		Volume     int  `ini:"Volume"`
		Mute       bool `ini:"Mute"`
	} `ini:"Sound"`
	Training struct {
		File     string  `ini:"File"`
		Font     string  `ini:"Font"`
		TextSize float64 `ini:"TextSize"`
	} `ini:"Training"`
}

// loadConfig reads path on top of the embedded defaults, creating the file
// from those defaults when it does not exist yet.
func loadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
			return nil, err
		}
	}
	f, err := ini.Load(defaultConfig, path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Def: path}
	if err := f.MapTo(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// vec3 turns a parsed INI triple into a vector, zero-filling short input so
// a truncated config line cannot crash the renderer.
func vec3(v []float64) mgl.Vec3 {
	var out mgl.Vec3
	for i := 0; i < len(v) && i < 3; i++ {
		out[i] = float32(v[i])
	}
	return out
}
