package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"corkboard/internal/app"
	"corkboard/internal/config"
	"corkboard/internal/logging"
)

type uiRunner func(ctx context.Context, settings config.Settings, configPath string, log logging.Logger) error

type logOpener func(path string, level logging.Level) (logging.Logger, io.Closer, error)

type commandWiring struct {
	stdout  io.Writer
	stderr  io.Writer
	runUI   uiRunner
	openLog logOpener
	version string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:  stdout,
		stderr:  stderr,
		runUI:   app.Run,
		openLog: logging.Open,
		version: buildVersion(),
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand(wiring commandWiring) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "corkboard",
		Short:         "A sticky-note board for the terminal",
		Long:          "corkboard shows a board of sticky notes you can create, drag, resize, edit and drop on the bin.",
		Version:       wiring.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), wiring, opts)
		},
	}
	root.SetOut(wiring.stdout)
	root.SetErr(wiring.stderr)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.corkboard/config.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	root.AddCommand(newConfigCommand(wiring, opts))
	return root
}

func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.ConfigPath()
}

func runBoard(ctx context.Context, wiring commandWiring, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := opts.resolveConfigPath()
	if err != nil {
		return err
	}
	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		settings.Logging.Level = opts.logLevel
	}
	logPath, err := settings.LogPath()
	if err != nil {
		return err
	}
	log, closer, err := wiring.openLog(logPath, logging.ParseLevel(settings.LogLevel()))
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("board starting", logging.F("config", path), logging.F("version", wiring.version))
	if err := wiring.runUI(ctx, settings, path, log); err != nil {
		log.Error("board stopped", logging.Err(err))
		return err
	}
	log.Info("board stopped")
	return nil
}
