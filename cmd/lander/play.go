package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var (
	flagConfig string
	flagWatch  bool
	flagSprite string
)

var playCmd = &cobra.Command{
	Use:   "play [profile]",
	Short: "Start a flight",
	Long: `Start a lander flight.

Controls:
  Up/W       - Fire main engine (burns fuel)
  Left/A     - Tilt left
  Right/D    - Tilt right
  P/Esc      - Pause
  R          - Restart (after the flight is lost)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Profiles:
  classic     - Flight ends on touchdown or an empty tank (default)
  freeflight  - Flight never ends, viewport follows the window

Examples:
  lander play
  lander play freeflight
  lander play --config ./moon.yaml --watch
  lander play --sprite ./ship.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flight flags on cmd.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on restart)")
	cmd.Flags().StringVar(&flagSprite, "sprite", "", "Path to ship art (text file, overrides sprite.path)")
}

func runPlay(_ *cobra.Command, args []string) error {
	profileName := ""
	if len(args) == 1 {
		profileName = args[0]
	}
	return play(profileName)
}

// play runs one session. An empty profileName uses the config's profile.
func play(profileName string) error {
	// Without an argument the config file's profile applies
	if profileName != "" {
		if _, err := config.ParseProfile(profileName); err != nil {
			return fmt.Errorf("%w (run 'lander profiles' to see available profiles)", err)
		}
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig(flagConfig, profileName)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close, logs are informational
	defer closeLog()

	width, height := terminalSize()

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		ReleaseAfter: cfg.Input.ReleaseAfter,
		SpritePath:   cfg.Sprite.Path,
		Logger:       logger,
	}
	if flagSprite != "" {
		opts.SpritePath = flagSprite
	}

	if flagWatch {
		path := config.ResolveLanderPath(flagConfig)
		if path == "" {
			logger.Warn("--watch ignored: running on the built-in config")
		} else {
			watcher, watchErr := config.NewWatcher(path)
			if watchErr != nil {
				logger.Warn("--watch ignored", "error", watchErr)
			} else {
				//nolint:errcheck // Closing only stops notifications
				defer watcher.Close()
				opts.Watcher = watcher
				opts.Reload = func() (config.LanderConfig, error) {
					return loadConfig(path, profileName)
				}
				logger.Info("watching config", "path", watcher.Path())
			}
		}
	}

	logger.Info("session start", "profile", cfg.Profile, "fps", flagFPS)
	if err := tui.Run(lander.New(cfg), opts); err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session end")
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// loadConfig loads the config, overlays a profile and validates.
// An empty profileName keeps the profile named in the file.
func loadConfig(path, profileName string) (config.LanderConfig, error) {
	cfg, err := config.LoadLander(path)
	if err != nil {
		return config.LanderConfig{}, err
	}
	if profileName == "" {
		profileName = cfg.Profile
	}
	profile, err := config.ParseProfile(profileName)
	if err != nil {
		return config.LanderConfig{}, err
	}
	config.ApplyProfile(&cfg, profile)
	if err := cfg.Validate(); err != nil {
		return config.LanderConfig{}, err
	}
	return cfg, nil
}
