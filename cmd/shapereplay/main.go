// Command shapereplay replays a gesture script against the editor, prints the
// resulting shapes and active guides, and optionally renders the drawing.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"shapeedit/internal/editor"
	"shapeedit/internal/guides"
	"shapeedit/internal/log"
	"shapeedit/internal/render"
	"shapeedit/internal/script"
	"shapeedit/internal/version"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
)

func main() {
	ctx := log.Stderr(context.Background())
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "shapereplay: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("shapereplay", pflag.ContinueOnError)
	fs.SetOutput(stdout)
	out := fs.StringP("out", "o", "", "write the drawing to `file` (.png or .svg)")
	width := fs.Int("width", 800, "output width in pixels")
	height := fs.Int("height", 600, "output height in pixels")
	stroke := fs.Float64("stroke", render.DefaultStrokeWidth, "outline width")
	tolerance := fs.Float64("tolerance", guides.Tolerance, "guide alignment tolerance")
	showVersion := fs.BoolP("version", "v", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stdout, "Usage: shapereplay [flags] [script]")
		fmt.Fprintln(stdout, "Reads the script from stdin when no file is given.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one script, got %d", fs.NArg())
	}

	in := stdin
	name := "stdin"
	if fs.NArg() == 1 {
		name = fs.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	steps, err := script.Parse(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug(ctx, "script parsed", slog.F("script", name), slog.F("steps", len(steps)))

	ed := editor.New(editor.WithTolerance(*tolerance))
	script.Run(ctx, ed, steps)

	for i, s := range ed.Shapes() {
		fmt.Fprintf(stdout, "shape %d: %s (%g,%g)-(%g,%g)\n",
			i, s.Kind, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
	for _, l := range ed.Guides().Active() {
		fmt.Fprintf(stdout, "guide %s at %g\n", l.ID, l.Position)
	}

	if *out == "" {
		return nil
	}
	err = render.ExportFile(*out, ed.Shapes(), render.ExportOptions{
		Width:       *width,
		Height:      *height,
		StrokeWidth: *stroke,
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "wrote drawing", slog.F("path", *out))
	return nil
}
