// Package main is the entry point for the shopping list TUI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/shoplist-tui/internal/config"
	"github.com/hy4ri/shoplist-tui/internal/logging"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `shoplist-tui - Terminal shopping list with Vim keybindings

USAGE:
    shoplist-tui [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --config PATH     Use the config file at PATH
    --legacy-ids      Number new items by list length (ids may repeat after a delete)

CONFIGURATION:
    Config file: ~/.config/shoplist-tui/config.yaml
    Override with $SHOPLIST_TUI_CONFIG or --config.

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        gg/G        Go to top/bottom

    Item Actions:
        a           Add item
        e, Enter    Edit selected item
        dd          Delete selected item
        yy          Copy list to clipboard

    Dialogs:
        Tab         Next field
        Enter       Add / save
        Esc         Cancel add, leave edit unchanged

    Other:
        ?           Show help
        F1          Toggle hints
        q           Quit

The list lives in memory only and is gone when you quit.
`

const configTemplate = `# Shopping List TUI Configuration
# Location: ~/.config/shoplist-tui/config.yaml

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Show edit/delete affordances and the key hint bar (default: true)
  show_hints: true
  # Desktop notification when an item is added (default: false)
  notifications: false

store:
  # "monotonic" never reuses ids; "legacy" numbers items by list length
  id_policy: monotonic

log:
  # Debug log file; leave empty to disable logging
  file: ""
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		legacyIDs   bool
		configPath  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&legacyIDs, "legacy-ids", false, "Number new items by list length")
	flag.StringVar(&configPath, "config", "", "Path to config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("shoplist-tui version %s\n", version)
		return nil
	}

	if initConfig {
		path := configPath
		if path == "" {
			p, err := config.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			path = p
		}
		return createConfigTemplate(path)
	}

	return runApp(configPath, legacyIDs)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
// An empty configPath loads the default location.
func runApp(configPath string, legacyIDs bool) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	if cfg.LoggingEnabled() {
		logger.Info("config loaded", zap.String("path", configPath), zap.String("level", cfg.Log.Level))
	}

	policy := shopping.ParseIDPolicy(cfg.Store.IDPolicy)
	if legacyIDs {
		policy = shopping.IDLegacyCount
	}

	store := shopping.NewStore(
		shopping.WithIDPolicy(policy),
		shopping.WithLogger(logger),
	)

	app := tui.NewApp(store, cfg, logger)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
