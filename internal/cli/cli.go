package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brian-c/string-spacing-calculator/pkg/buildinfo"
	"github.com/brian-c/string-spacing-calculator/pkg/cache"
	"github.com/brian-c/string-spacing-calculator/pkg/preset"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
)

// appName is the application name used for directories and display.
const appName = "stringspacing"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In is read when gauges are given as "-".
	In io.Reader

	configFile string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Evenly space strings across a guitar, bass or mandolin nut",
		Long: `stringspacing computes where to cut string slots on a nut or saddle so that
the gaps between courses are equal, given the string gauges and the clearance
at each edge. It prints the placements and renders a to-scale template.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/stringspacing/stringspacing.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Stores
// =============================================================================

// openStore opens the settings store configured by settings.dir.
func (c *CLI) openStore() (*settings.FileStore, error) {
	return settings.NewFileStore(c.config.Settings.Dir)
}

// loadSettings reads the persisted settings. The caller closes the store.
func (c *CLI) loadSettings(ctx context.Context) (settings.Settings, *settings.FileStore, error) {
	store, err := c.openStore()
	if err != nil {
		return settings.Settings{}, nil, err
	}
	s, err := settings.Load(ctx, store)
	if err != nil {
		store.Close()
		return settings.Settings{}, nil, err
	}
	return s, store, nil
}

// readSettings reads the persisted settings without keeping the store open.
func (c *CLI) readSettings(ctx context.Context) (settings.Settings, error) {
	s, store, err := c.loadSettings(ctx)
	if err != nil {
		return s, err
	}
	return s, store.Close()
}

// catalog returns the built-in presets plus any from presets.file.
func (c *CLI) catalog() (preset.Catalog, error) {
	return preset.WithUser(c.config.Presets.File)
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/stringspacing/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/stringspacing/).
func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName)
}
