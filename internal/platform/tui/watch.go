package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// ReloadFunc re-reads the config after its file changed.
type ReloadFunc func() (config.LanderConfig, error)

// forwardReloads turns watcher events into ConfigReloadedMsg until the
// watcher is closed. A config that fails to load is logged and dropped.
func forwardReloads(send func(tea.Msg), w *config.Watcher, reload ReloadFunc, logger *log.Logger) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := reload()
			if err != nil {
				logger.Warn("config reload failed, keeping previous config", "path", path, "error", err)
				continue
			}
			send(ConfigReloadedMsg{Path: path, Config: cfg})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Error("config watcher failed", "error", err)
		}
	}
}
