package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
)

// SpriteLoadedMsg carries ship art loaded in the background.
type SpriteLoadedMsg struct {
	Sprite lander.SpriteLoaded
}

// SpriteFailedMsg reports that the ship art could not be loaded.
// The game keeps drawing its placeholder.
type SpriteFailedMsg struct {
	Path string
	Err  error
}

// ConfigReloadedMsg carries a config re-read after its file changed.
type ConfigReloadedMsg struct {
	Path   string
	Config config.LanderConfig
}

// keyReleaseMsg fires when a flight key has not repeated for a while.
// seq identifies the press it belongs to; later presses supersede it.
type keyReleaseMsg struct {
	key string
	seq uint64
}

// loadSpriteCmd loads the ship art off the update loop.
func loadSpriteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		sprite, err := lander.LoadSprite(path)
		if err != nil {
			return SpriteFailedMsg{Path: path, Err: err}
		}
		return SpriteLoadedMsg{Sprite: sprite}
	}
}

// releaseCmd schedules the synthetic release of a held key.
func releaseCmd(key string, seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return keyReleaseMsg{key: key, seq: seq}
	})
}
