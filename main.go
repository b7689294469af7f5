package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdxmph/contact-manager/internal/config"
	"github.com/pdxmph/contact-manager/internal/logger"
	"github.com/pdxmph/contact-manager/internal/store"
	"github.com/pdxmph/contact-manager/internal/tui"
)

const (
	Version = "0.1.0"
	appName = "contact-manager"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Manage contacts in the terminal",
		Long: `contact-manager is a terminal contact list. Contacts live in memory
for the length of the session: add, edit, search and delete them, or
select several and delete them together.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, logLevel)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (TOML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(listCmd(&configPath, &logLevel))
	cmd.AddCommand(configCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(configPath, logLevel string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newStore builds the session store from the seed contacts.
func newStore(cfg *config.Config, log *slog.Logger) *store.Store {
	opts := []store.Option{store.WithLogger(log)}
	if cfg.IDs.Generator == config.GeneratorCounter {
		opts = append(opts, store.WithIDGenerator(store.NewCounterGenerator(1)))
	}
	opts = append(opts, store.WithSeed(store.Seed()))
	return store.New(opts...)
}

func run(cfg *config.Config) error {
	log, closer, err := logger.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	s := newStore(cfg, log)
	log.Info("session started", "contacts", s.Len(), "id_generator", cfg.IDs.Generator)

	model := tui.New(s, tui.Options{
		ExportDir: cfg.Export.Dir,
		Logger:    log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}

	log.Info("session ended", "contacts", s.Len())
	return nil
}
