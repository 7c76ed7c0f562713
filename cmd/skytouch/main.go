package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ayusman/skytouch/internal/app"
	"github.com/ayusman/skytouch/internal/config"
	"github.com/ayusman/skytouch/internal/server"
	"github.com/ayusman/skytouch/internal/store"
	"github.com/ayusman/skytouch/internal/tray"
)

func main() {
	fmt.Println("SkyTouch - Hand Trackpad")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".skytouch")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "skytouch.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Trim event log entries older than 30 days
	if n, err := st.Events().PruneBefore(time.Now().AddDate(0, 0, -30)); err != nil {
		log.Printf("Event log prune failed: %v", err)
	} else if n > 0 {
		log.Printf("Pruned %d old events", n)
	}

	cfg, err := st.Settings().LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application := app.New(app.Config{
		Store:     st,
		PluginDir: findPluginDir(dataDir),
		App:       cfg,
	})
	if err := application.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	srv := server.New(server.Config{
		StaticDir: findWebDir(),
		Store:     st,
		Camera:    application.Camera(),
		Apply: func(c config.Config) error {
			application.UpdateConfig(c)
			return nil
		},
	})
	application.SetPublisher(srv.Results().Publish)

	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	application.SetEnabled(true)

	t := tray.New()
	t.OnToggle(application.SetEnabled)
	t.OnSettings(func() {
		openBrowser("http://localhost" + cfg.Server.Addr)
	})
	t.OnQuit(func() {
		application.Stop()
	})

	// Keep the tray's last-event line current
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.SetLastEvent(application.LastEvent())
		}
	}()

	// Blocks until quit
	t.Run()
}

// openBrowser opens the settings UI in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findPluginDir returns the plugin directory, preferring a local plugins/
// tree during development over the installed location.
func findPluginDir(dataDir string) string {
	if info, err := os.Stat("plugins"); err == nil && info.IsDir() {
		if abs, err := filepath.Abs("plugins"); err == nil {
			return abs
		}
	}
	return filepath.Join(dataDir, "plugins")
}

// findWebDir searches for the web directory in common locations.
func findWebDir() string {
	for _, p := range []string{"web", "../web", "../../web"} {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	homeWebDir := filepath.Join(homeDir, ".skytouch", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}
	return ""
}
