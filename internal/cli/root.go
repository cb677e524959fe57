// Package cli contains the docsearch commands
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docsearch/internal/config"
	"docsearch/internal/eventbus"
	"docsearch/internal/index"
	"docsearch/internal/ui"
	"docsearch/internal/watch"
)

var (
	version = "dev"
	commit  = "unknown"
)

// SetVersion sets the version string reported by the version command
func SetVersion(v, c string) {
	version = v
	commit = c
}

// app holds the flag values and the configuration shared by all commands
type app struct {
	cfgFile    string
	baseURL    string
	sourceKind string
	siteDir    string
	watch      bool
	verbose    bool

	cfg *config.Config
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "docsearch",
		Short: "Search a documentation site from the terminal",
		Long: `docsearch loads the search index of a static documentation site and
lets you filter it as you type.

Example usage:
  docsearch                                # open the search UI
  docsearch --source scan --site-dir _site # index the built landing page
  docsearch query apex                     # print matching pages
  docsearch query apex --html              # print the result markup`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	flags.StringVar(&a.baseURL, "base-url", "", "site origin used to fetch the index and open results")
	flags.StringVar(&a.sourceKind, "source", "", `index source: "fetch" or "scan"`)
	flags.StringVar(&a.siteDir, "site-dir", "", "local build output to scan and watch")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVar(&a.watch, "watch", false, "rebuild the index when files under --site-dir change")

	rootCmd.AddCommand(newQueryCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// initConfig loads the configuration file and applies flag overrides
func (a *app) initConfig(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)

	if a.cfgFile != "" {
		cfg, err = config.NewConfigService(".").LoadFromPath(a.cfgFile)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return fmt.Errorf("getting working directory: %w", wdErr)
		}
		cfg, err = config.NewConfigService(cwd).Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Site.BaseURL = a.baseURL
	}
	if flags.Changed("source") {
		cfg.Source.Kind = a.sourceKind
	}
	if flags.Changed("site-dir") {
		cfg.Site.Dir = a.siteDir
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) newLoader(bus eventbus.EventBus, logger *slog.Logger) (*index.Loader, error) {
	source, err := index.NewSource(a.cfg, &http.Client{})
	if err != nil {
		return nil, err
	}
	return index.NewLoader(source, bus, logger), nil
}

// runTUI runs the interactive search UI
func (a *app) runTUI(cmd *cobra.Command) error {
	if a.watch && a.cfg.Site.Dir == "" {
		return fmt.Errorf("%w: --watch needs --site-dir or site.dir", config.ErrInvalid)
	}

	// Log to a file so the alternate screen stays clean
	logOut := io.Discard
	if a.cfg.UI.LogFile != "" {
		logFile, err := os.OpenFile(a.cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			logOut = logFile
		}
	}
	logger := newLogger(logOut, a.verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(logger)
	defer bus.Close()

	loader, err := a.newLoader(bus, logger)
	if err != nil {
		return err
	}

	model, err := ui.NewModel(ui.Options{
		Context: ctx,
		Config:  a.cfg,
		Loader:  loader,
		Bus:     bus,
		Logger:  logger,
	})
	if err != nil {
		// Nothing has touched the terminal yet
		logger.Error("search UI not started", "error", err)
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// The watcher asks for rebuilds through the bus
	unsubscribe := bus.Subscribe(eventbus.EventIndexRebuildRequested, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	if a.watch {
		w := watch.New(bus, logger)
		if err := w.Start(ctx, a.cfg.Site.Dir); err != nil {
			return fmt.Errorf("watching site: %w", err)
		}
		defer w.Stop()
	}

	logger.Info("starting UI", "source", loader.SourceName(), "base_url", a.cfg.Site.BaseURL)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		logger.Error("error running program", "error", err)
		return fmt.Errorf("running UI: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}
