package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/grindlemire/boxlayout/internal/config"
	"github.com/grindlemire/boxlayout/internal/debug"
	"github.com/grindlemire/boxlayout/internal/layout"
	"github.com/grindlemire/boxlayout/internal/scene"
)

// Used when neither flags, configuration nor the terminal give a size.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type measureOptions struct {
	constraints layout.Constraints
	format      string
	owner       []layout.Option
}

// rootConstraints picks the root's maximum size: flags first, then the
// configuration, then the size of the terminal on stdout.
func rootConstraints(width, height int, out config.OutputConfig, termSize func() (int, int, error)) (layout.Constraints, error) {
	if width == 0 {
		width = out.Width
	}
	if height == 0 {
		height = out.Height
	}
	if width == 0 || height == 0 {
		tw, th, err := termSize()
		if err != nil {
			tw, th = fallbackWidth, fallbackHeight
		}
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}
	if width < 0 || height < 0 {
		return layout.Constraints{}, fmt.Errorf("root size %dx%d must not be negative", width, height)
	}
	return layout.Loose(layout.Px(width), layout.Px(height)), nil
}

func stdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func runMeasure(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no scene files given")
	}

	c, err := rootConstraints(cmd.Int("width"), cmd.Int("height"), env.cfg.Output, stdoutSize)
	if err != nil {
		return err
	}

	layoutCfg := env.cfg.Layout
	if d := cmd.Float("density"); d != 0 {
		layoutCfg.Density = d
	}
	format := env.cfg.Output.Format
	if f := cmd.String("format"); f != "" {
		format = f
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown output format %q", format)
	}
	opts := measureOptions{constraints: c, format: format, owner: layoutCfg.Options()}

	paths := cmd.Args().Slice()
	env.log.Debug("Measuring scenes", zap.Strings("files", paths), zap.Stringer("constraints", c))

	outputs, err := measureFiles(ctx, env.log, paths, opts)
	if err != nil {
		return err
	}
	for i, out := range outputs {
		if len(paths) > 1 {
			fmt.Fprintf(os.Stdout, "# %s\n", paths[i])
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
	}
	return nil
}

// measureFiles lays out every scene concurrently, one owner per file, and
// returns the rendered reports in argument order.
func measureFiles(ctx context.Context, log *zap.Logger, paths []string, opts measureOptions) ([][]byte, error) {
	outputs := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := measureFile(log.With(zap.String("scene", path)), path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func measureFile(log *zap.Logger, path string, opts measureOptions) ([]byte, error) {
	s, err := scene.LoadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := scene.Build(s)
	if err != nil {
		return nil, err
	}
	// Passes go to the console and, when enabled, to the trace file.
	passLog := zap.New(zapcore.NewTee(log.Core(), debug.Logger().Core()))
	owner, err := layout.NewOwner(tree.Root, append(append([]layout.Option(nil), opts.owner...), layout.WithLogger(passLog))...)
	if err != nil {
		return nil, err
	}
	if err := owner.Layout(opts.constraints); err != nil {
		return nil, err
	}
	log.Debug("Scene measured", zap.Stringer("size", tree.Root.Size()), zap.Int("measured", owner.Stats().Measured))

	var buf bytes.Buffer
	entries := tree.Report(owner)
	if opts.format == "yaml" {
		err = scene.WriteYAML(&buf, entries)
	} else {
		err = scene.WriteText(&buf, entries)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
