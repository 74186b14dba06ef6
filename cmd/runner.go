package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/soundfolio/internal/services"
	"github.com/desertthunder/soundfolio/internal/shared"
	"github.com/desertthunder/soundfolio/internal/tasks"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	catalog    services.Catalog
	injected   bool // catalog was supplied by the caller and is never rebuilt from config
	sync       *tasks.Synchronizer
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    services.Catalog
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	r := &Runner{
		catalog:    opts.Catalog,
		injected:   opts.Catalog != nil,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
	r.configure(opts.Config)
	return r
}

// configure applies config, rebuilding the catalog client and synchronizer.
func (r *Runner) configure(config *shared.Config) {
	r.config = config
	if !r.injected {
		r.catalog = services.NewCatalogService(services.CatalogOpts{
			BaseURL:           config.Remote.BaseURL,
			HTTPClient:        r.httpClient,
			Timeout:           config.Remote.Timeout.Duration,
			RequestsPerSecond: config.Remote.RequestsPerSecond,
		})
	}
	r.sync = tasks.NewSynchronizer(r.catalog, r.logger)
}

// SetLogger replaces the logger used by the runner and its synchronizer.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.sync = tasks.NewSynchronizer(r.catalog, logger)
}

// Before loads --config (when present), applies --base-url and sets the log level.
//
// A missing config file falls back to the embedded defaults so that `setup config` can create it.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	r.configPath = cmd.String("config")

	config := shared.DefaultConfig()
	if _, err := os.Stat(r.configPath); err == nil {
		if config, err = shared.LoadConfig(r.configPath); err != nil {
			return ctx, err
		}
	} else if cmd.IsSet("config") {
		r.logger.Warn("config file not found, using defaults", "path", r.configPath)
	}

	if baseURL := cmd.String("base-url"); baseURL != "" {
		config.Remote.BaseURL = baseURL
		if err := config.Validate(); err != nil {
			return ctx, err
		}
	}

	level := shared.ParseLogLevel(config.Log.Level)
	if cmd.Bool("debug") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	r.configure(config)
	r.logger.Debug("configured", "base_url", config.Remote.BaseURL, "config", r.configPath)
	return ctx, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, songsCommand, devServerCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// writeSuccess prints a green status line.
func (r *Runner) writeSuccess(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(r.output, "✓ "+format+"\n", args...)
}

// writeWarning prints a yellow status line.
func (r *Runner) writeWarning(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(r.output, "⚠ "+format+"\n", args...)
}
