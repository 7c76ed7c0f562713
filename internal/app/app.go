// Package app wires the capture, detection, gesture and pointer layers into
// the SkyTouch trackpad pipeline.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/skytouch/internal/capture"
	"github.com/ayusman/skytouch/internal/config"
	"github.com/ayusman/skytouch/internal/detector"
	"github.com/ayusman/skytouch/internal/gesture"
	"github.com/ayusman/skytouch/internal/mouse"
	"github.com/ayusman/skytouch/internal/plugin"
	"github.com/ayusman/skytouch/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
	// pluginTimeoutMs bounds a single plugin action execution.
	pluginTimeoutMs = 5000
)

// Config holds the construction options for the application.
type Config struct {
	Store     *store.Store
	PluginDir string
	App       config.Config
}

// App orchestrates the trackpad pipeline: camera frames in, pointer actions
// and broadcast results out.
type App struct {
	mu     sync.RWMutex
	appCfg config.Config

	camera     capture.Camera
	motion     *capture.MotionDetector
	hands      detector.Detector
	gestures   *gesture.Detector
	pointer    mouse.Controller
	store      *store.Store
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor

	publish   func(gesture.Result)
	enabled   bool
	stopCh    chan struct{}
	lastEvent string
}

// New creates a new App instance with the given configuration.
func New(cfg Config) *App {
	camera := capture.NewCamera(cfg.App.Camera.DeviceID)
	camera.SetResolution(cfg.App.Camera.Width, cfg.App.Camera.Height)

	a := &App{
		appCfg:     cfg.App,
		camera:     camera,
		motion:     capture.NewMotionDetector(1.0), // 1% pixel change
		gestures:   gesture.NewDetector(cfg.App.GestureConfig()),
		pointer:    mouse.NewRobotController(mouse.ConfigFrom(cfg.App)),
		store:      cfg.Store,
		pluginMgr:  plugin.NewManager(cfg.PluginDir),
		pluginExec: plugin.NewExecutor(pluginTimeoutMs),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(cfg.App.DetectorConfig()); err == nil {
		a.hands = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.hands = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables trackpad control. Disabling drops the
// pointer movement baseline so re-enabling does not jump the cursor.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	if !enabled {
		a.pointer.Reset()
	}
}

// IsEnabled returns whether trackpad control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hands = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetController sets the pointer controller implementation to use.
func (a *App) SetController(c mouse.Controller) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pointer = c
}

// SetPublisher registers a hook invoked with every processed frame's result.
func (a *App) SetPublisher(publish func(gesture.Result)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.publish = publish
}

// UpdateConfig applies new settings to the running pipeline. The gesture
// detector and pointer controller pick them up on the next frame; the camera
// resolution changes immediately. Hand-tracking settings require a detector
// restart and are applied on the next program start.
func (a *App) UpdateConfig(cfg config.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.appCfg = cfg
	a.gestures.UpdateConfig(cfg.GestureConfig())
	a.pointer.UpdateConfig(mouse.ConfigFrom(cfg))
	a.camera.SetResolution(cfg.Camera.Width, cfg.Camera.Height)

	log.Println("Configuration updated")
}

// Config returns the active application configuration.
func (a *App) Config() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.appCfg
}

// LastEvent returns a short description of the most recent discrete event.
func (a *App) LastEvent() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastEvent
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hands
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Trackpad pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.hands != nil {
		if err := a.hands.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Trackpad pipeline stopped")
}
