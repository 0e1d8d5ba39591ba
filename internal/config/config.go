// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background [3]float32 `yaml:"background,flow"` // RGB clear color
}

// CameraConfig holds the viewing camera.
type CameraConfig struct {
	Position   [3]float32 `yaml:"position,flow"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// LightingConfig holds the ambient and point light.
type LightingConfig struct {
	AmbientIntensity float32    `yaml:"ambient_intensity"`
	PointPosition    [3]float32 `yaml:"point_position,flow"`
	PointIntensity   float32    `yaml:"point_intensity"`
}

// SceneConfig holds the label sphere settings.
type SceneConfig struct {
	Radius          float32    `yaml:"radius"`
	SphereSegments  int        `yaml:"sphere_segments"`
	SphereOpacity   float32    `yaml:"sphere_opacity"` // 0 hides the anchor sphere
	FontSize        float32    `yaml:"font_size"`      // Label em height in world units
	FontPath        string     `yaml:"font_path"`      // TTF/OTF/TTC file, empty searches system fonts
	FontPixels      float64    `yaml:"font_pixels"`    // Rasterization size per em
	LabelColor      [3]float32 `yaml:"label_color,flow"`
	DragSensitivity float32    `yaml:"drag_sensitivity"`
	Seed            uint64     `yaml:"seed"` // 0 seeds from the clock
	Countries       []string   `yaml:"countries"`
	CountriesFile   string     `yaml:"countries_file"` // One name per line, replaces Countries
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// DefaultCountries is the label list shown when none is configured.
var DefaultCountries = []string{
	"대한민국",
	"일본",
	"중국",
	"미국",
	"캐나다",
	"호주",
	"영국",
	"프랑스",
	"독일",
	"이탈리아",
	"스페인",
	"브라질",
	"멕시코",
	"인도",
	"러시아",
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: [3]float32{0, 0, 0},
		},
		Camera: CameraConfig{
			Position:   [3]float32{0, 0, 5},
			FOVDegrees: 75,
			Near:       0.1,
			Far:        1000,
		},
		Lighting: LightingConfig{
			AmbientIntensity: 1,
			PointPosition:    [3]float32{10, 10, 10},
			PointIntensity:   1,
		},
		Scene: SceneConfig{
			Radius:          2,
			SphereSegments:  32,
			SphereOpacity:   0,
			FontSize:        0.15,
			FontPixels:      64,
			LabelColor:      [3]float32{1, 1, 1},
			DragSensitivity: 0.00008,
			Countries:       append([]string(nil), DefaultCountries...),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// Validate checks the values the scene cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Scene.Radius <= 0:
		return fmt.Errorf("%w: scene.radius must be positive, got %v", ErrInvalid, c.Scene.Radius)
	case c.Scene.FontSize <= 0:
		return fmt.Errorf("%w: scene.font_size must be positive, got %v", ErrInvalid, c.Scene.FontSize)
	case c.Scene.FontPixels <= 0:
		return fmt.Errorf("%w: scene.font_pixels must be positive, got %v", ErrInvalid, c.Scene.FontPixels)
	case c.Scene.SphereSegments < 3:
		return fmt.Errorf("%w: scene.sphere_segments must be at least 3, got %d", ErrInvalid, c.Scene.SphereSegments)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: camera.fov_degrees out of range: %v", ErrInvalid, c.Camera.FOVDegrees)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	return nil
}
