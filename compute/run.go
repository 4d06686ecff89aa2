// Package compute implements the compute sub-command: it builds a document
// from a YAML tree, cascades a stylesheet through it and replays mutation
// steps.
package compute

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"rcss/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compute")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input tree has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	opts := Options{
		TreePath:       src,
		StylesheetPath: cmd.String("stylesheet"),
		Properties:     cmd.StringSlice("property"),
		Variables:      cmd.Bool("variables"),
		EachStep:       cmd.Bool("each-step"),
	}

	out := os.Stdout
	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if out, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer func() {
			if er := out.Close(); er != nil && err == nil {
				err = fmt.Errorf("unable to close destination file '%s': %w", dst, er)
			}
		}()
	}

	if err := env.PrepareTracer(); err != nil {
		return err
	}
	defer func() {
		if _, er := env.CloseTracer(); er != nil {
			log.Warn("Unable to save style trace", zap.Error(er))
		}
	}()

	log.Info("Processing starting", zap.String("tree", src), zap.String("stylesheet", opts.StylesheetPath))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env, opts, out, log)
}
