// Package app wires the window, renderer and globe into the main loop.
package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/labelsphere/internal/config"
	"github.com/Faultbox/labelsphere/internal/engine/camera"
	"github.com/Faultbox/labelsphere/internal/engine/debug"
	"github.com/Faultbox/labelsphere/internal/engine/input"
	"github.com/Faultbox/labelsphere/internal/engine/lighting"
	"github.com/Faultbox/labelsphere/internal/engine/renderer"
	"github.com/Faultbox/labelsphere/internal/engine/scene"
	"github.com/Faultbox/labelsphere/internal/engine/text"
	"github.com/Faultbox/labelsphere/internal/engine/window"
	"github.com/Faultbox/labelsphere/internal/globe"
	"github.com/Faultbox/labelsphere/internal/logger"
	"github.com/Faultbox/labelsphere/pkg/math"
)

// Title is the window title.
const Title = "Label Sphere"

// App is the running application.
type App struct {
	config  *config.Config
	running bool
	frame   uint64

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	camera      *camera.Camera
	globe       *globe.Globe
	rasterizer  *text.Rasterizer
	scene       *scene.Scene
	screenshots *debug.ScreenshotCapture
}

// ResolveSeed replaces a zero scene seed with one taken from the clock, so
// the seed logged with the layout reproduces it. Returns the seed in use.
func ResolveSeed(cfg *config.Config) uint64 {
	if cfg.Scene.Seed == 0 {
		cfg.Scene.Seed = uint64(time.Now().UnixNano())
		if cfg.Scene.Seed == 0 {
			cfg.Scene.Seed = 1
		}
	}
	return cfg.Scene.Seed
}

// NewGlobe builds the globe described by cfg. It needs no window, so the
// layout can be inspected headless.
func NewGlobe(cfg *config.Config) (*globe.Globe, error) {
	names, err := cfg.LabelNames()
	if err != nil {
		return nil, err
	}

	opts := globe.Options{
		Radius:          cfg.Scene.Radius,
		DragSensitivity: cfg.Scene.DragSensitivity,
		Names:           names,
	}
	if cfg.Scene.Seed != 0 {
		opts.Source = rand.New(rand.NewPCG(cfg.Scene.Seed, cfg.Scene.Seed))
	}

	g, err := globe.New(opts)
	if err != nil {
		return nil, err
	}
	logger.Info("labels built",
		zap.Int("count", len(g.Labels())),
		zap.Float32("radius", g.Radius()),
		zap.Uint64("seed", cfg.Scene.Seed),
	)
	return g, nil
}

// New creates the window and every GL resource.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	ResolveSeed(cfg)

	a := &App{
		config:      cfg,
		input:       input.New(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "labelsphere"),
	}

	var err error
	a.globe, err = NewGlobe(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build globe: %w", err)
	}

	a.rasterizer, err = text.NewRasterizer(cfg.Scene.FontPath, cfg.Scene.FontPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: cfg.Graphics.Background,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	cc := cfg.Camera
	a.camera = camera.New(math.Vec3From(cc.Position), cc.FOVDegrees, cc.Near, cc.Far)
	a.camera.SetViewport(dw, dh)

	lc := cfg.Lighting
	a.scene, err = scene.New(scene.Config{
		Radius:         cfg.Scene.Radius,
		SphereSegments: cfg.Scene.SphereSegments,
		SphereOpacity:  cfg.Scene.SphereOpacity,
		FontSize:       cfg.Scene.FontSize,
		LabelColor:     cfg.Scene.LabelColor,
		Lights:         lighting.NewRig(lc.AmbientIntensity, math.Vec3From(lc.PointPosition), lc.PointIntensity),
	}, a.globe.Labels(), a.rasterizer)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	logger.Info("initialized successfully")
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// 2. Update labels
		a.frame++
		a.globe.Update(globe.FrameContext{
			Camera: globe.CameraPose{Position: a.camera.Position, Up: a.camera.Up},
			Delta:  dt,
			Frame:  a.frame,
		})

		// 3. Render
		a.renderer.Begin()
		a.scene.Render(a.camera, a.globe)
		a.renderer.End()

		if a.input.IsKeyPressed(sdl.K_F12) {
			a.takeScreenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			t := a.globe.Transform()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Float32("rotation_x", t.RotationX),
				zap.Float32("rotation_y", t.RotationY),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			dw, dh := a.window.DrawableSize()
			a.renderer.Resize(dw, dh)
			a.camera.SetViewport(dw, dh)
		case input.EventKeyDown:
			if event.Key == sdl.K_ESCAPE {
				a.running = false
			}
		default:
			before := a.globe.DragState()
			routePointer(a.globe, event, a.hitTest)
			if after := a.globe.DragState(); after != before {
				logger.Debug("drag", zap.Stringer("state", after))
			}
		}
	}
}

// hitTest casts a ray through a window-space point. Mouse events arrive in
// window coordinates, which differ from the drawable size on HiDPI.
func (a *App) hitTest(x, y float32) bool {
	w, h := a.window.Size()
	return hitSphere(a.camera, x, y, w, h, a.globe.Radius())
}

func (a *App) takeScreenshot() {
	w, h := a.renderer.Size()
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	if _, err := a.screenshots.CaptureFromPixels(pixels, w, h); err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
	}
}

// Close releases resources in reverse order of creation.
func (a *App) Close() {
	logger.Info("closing")

	if a.scene != nil {
		a.scene.Destroy()
		a.scene = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
	if a.rasterizer != nil {
		a.rasterizer.Close()
		a.rasterizer = nil
	}
}
