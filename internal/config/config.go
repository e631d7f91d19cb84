package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"tri-rasterizer/internal/output"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneFile string `json:"scene_file"`
	OutputDir string `json:"output_dir"`

	// Frame
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  int     `json:"scale"`
	Format string  `json:"format"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`

	// Camera
	FOV    float64    `json:"fov"`
	Aspect float64    `json:"aspect"`
	Eye    [3]float64 `json:"eye"`

	// Animation
	Angle     float64 `json:"angle"`
	AngleStep float64 `json:"angle_step"`
	Frames    int     `json:"frames"`

	Workers int `json:"workers"`
}

// Default render settings.
const (
	DefaultSize      = 700
	DefaultNear      = 0.1
	DefaultFar       = 50.0
	DefaultFOV       = 45.0
	DefaultAngleStep = 10.0
	DefaultOutputDir = "renders"
)

// DefaultEye is the camera position used when none is configured.
var DefaultEye = [3]float64{0, 0, 5}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the config untouched.
type Flags struct {
	SceneFile string
	OutputDir string
	Format    string
	Size      int
	Scale     int
	Frames    int
	Angle     float64
	AngleStep float64
	Workers   int
}

// Resolve applies CLI overrides and fills empty fields with defaults.
// Relative paths are resolved against baseDir when it is non-empty.
func (c *Config) Resolve(flags Flags, baseDir string) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Width = flags.Size
		c.Height = flags.Size
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Angle != 0 {
		c.Angle = flags.Angle
	}
	if flags.AngleStep != 0 {
		c.AngleStep = flags.AngleStep
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if baseDir != "" {
		if !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(baseDir, c.OutputDir)
		}
		if c.SceneFile != "" && !filepath.IsAbs(c.SceneFile) {
			c.SceneFile = filepath.Join(baseDir, c.SceneFile)
		}
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = DefaultSize
	}
	if c.Height <= 0 {
		c.Height = DefaultSize
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Format == "" {
		c.Format = string(output.FormatPNG)
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	if c.Aspect == 0 {
		c.Aspect = float64(c.Width) / float64(c.Height)
	}
	if c.Eye == [3]float64{} {
		c.Eye = DefaultEye
	}
	if c.AngleStep == 0 {
		c.AngleStep = DefaultAngleStep
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Near <= 0 || c.Near >= c.Far {
		return fmt.Errorf("config: invalid depth range near=%g far=%g", c.Near, c.Far)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("config: invalid fov %g", c.FOV)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
