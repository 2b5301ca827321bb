package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quitlog/internal"
	"quitlog/internal/config"
	"quitlog/internal/dates"
	"quitlog/internal/ledger"
	"quitlog/internal/settings"
	"quitlog/internal/store"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "quitlog",
		Short:        "Track and cut down a habit from your terminal",
		Long:         "quitlog counts the daily usages of a habit you are trying to quit and keeps a rolling logbook of past days.",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	root.AddCommand(logCmd(), todayCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app wires the store and the services every command shares.
type app struct {
	cfg      config.Config
	store    *store.Store
	ledger   *ledger.Ledger
	settings *settings.Settings
	log      zerolog.Logger
}

func newApp() (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	logger := setupLogger(cfg)

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &app{
		cfg:      cfg,
		store:    st,
		ledger:   ledger.New(st, logger),
		settings: settings.New(st, logger),
		log:      logger,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// setupLogger writes to the configured log file; the TUI owns the terminal,
// so nothing may log to stdout. A logger that can't open its file is a Nop.
func setupLogger(cfg config.Config) zerolog.Logger {
	f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	m := internal.NewModel(a.ledger, a.settings, internal.ThemeByName(a.cfg.Theme), a.log)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Record one usage for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			count, err := a.ledger.Increment(dates.DayKey(time.Now()))
			if err != nil {
				return err
			}
			title, _ := internal.UsageMessage(count)
			fmt.Println(title)
			return nil
		},
	}
}

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's count without changing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			count := a.ledger.ReadDay(dates.DayKey(time.Now()))
			title, subtitle := internal.UsageMessage(count)
			fmt.Printf("%s\n%s\n", title, subtitle)
			return nil
		},
	}
}
