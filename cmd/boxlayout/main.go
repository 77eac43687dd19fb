// Package main provides the boxlayout CLI. It lays out scene files and
// prints the resolved bounds of every node.
//
// Usage:
//
//	boxlayout [--config FILE] [--trace FILE] measure [--width N] [--height N] SCENE...
//	boxlayout dumpconfig [--default] [DESTINATION]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/grindlemire/boxlayout/internal/config"
	"github.com/grindlemire/boxlayout/internal/debug"
)

const version = "0.1.0"

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := envFromContext(ctx)

	configFile := cmd.String("config")
	if env.cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.log, err = env.cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	if trace := cmd.String("trace"); trace != "" {
		if err = debug.Init(trace); err != nil {
			return ctx, fmt.Errorf("unable to prepare trace log: %w", err)
		}
	}

	env.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)

	env.log.Debug("Program ended", zap.Duration("elapsed", env.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))

	// stderr and stdout cannot be synced on some systems, ignore that
	_ = env.log.Sync()

	if er := debug.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug log: %w", er))
	}
	return
}

var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.cfg != nil {
		env.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "boxlayout",
		Usage:           "constraint based box layout of scene files",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every layout pass to the console"},
			&cli.StringFlag{Name: "trace", Usage: "write layout pass details to `FILE` (same as " + debug.EnvVar + ")"},
		},
		Commands: []*cli.Command{
			{
				Name:         "measure",
				Usage:        "Lays out scene file(s) and prints node bounds",
				OnUsageError: usageErrorHandler,
				Action:       runMeasure,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Usage: "root maximum width in `PX` (default: configuration, then terminal width)"},
					&cli.IntFlag{Name: "height", Usage: "root maximum height in `PX` (default: configuration, then terminal height)"},
					&cli.FloatFlag{Name: "density", Usage: "pixels per dp (default: configuration)"},
					&cli.StringFlag{Name: "format", Usage: "output `FORMAT`: text or yaml (default: configuration)"},
				},
				ArgsUsage: "SCENE...",
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps either default or actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				ArgsUsage: "DESTINATION",
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		data = config.ConfigYAML
	} else if data, err = config.Dump(env.cfg); err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
