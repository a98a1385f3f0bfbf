package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brian-c/string-spacing-calculator/pkg/cache"
	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/render/diagram"
)

const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatPDF  = "pdf"
	formatJSON = "json"

	defaultOutputBase = "string-spacing"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple outputs)
	formats []string // output formats: "svg", "png", "pdf", "json"
	dpi     float64  // PNG resolution
	noCache bool     // skip the artifact cache
}

// renderCommand creates the render command for generating the printable template.
func (c *CLI) renderCommand() *cobra.Command {
	var in inputFlags
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a to-scale spacing template",
		Long: `Render the string spacing as a template sized in real inches. Print it at
100% scale and lay it on the nut or saddle to mark the slots.`,
		Example: `  stringspacing render -o nut.svg
  stringspacing render --preset bass-slinky -f svg,pdf -o nut
  stringspacing render -f png --dpi 600`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr == "" {
				formatsStr = c.config.Render.Format
			}
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("dpi") {
				opts.dpi = c.config.Render.DPI
			}
			_, l, err := c.resolve(cmd.Context(), &in)
			if err != nil {
				return err
			}
			d := diagram.Build(l, c.config.diagramOptions()...)
			if l.Overfull() {
				printWarning("Strings do not fit; the template will overlap")
			}
			return c.runRender(cmd.Context(), d, &opts)
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format) or base path (multiple); "-" for stdout`)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", diagram.DefaultDPI, "PNG resolution")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true, formatJSON: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path. If output has a format extension
// (.svg, .pdf, etc.), it strips that extension.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where format is written. A single format goes to
// output as given; otherwise each format gets its extension on the base.
func outputPath(output, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output) + "." + format
}

// runRender renders d to every requested format.
func (c *CLI) runRender(ctx context.Context, d diagram.Diagram, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if d.Empty() {
		return diagram.ErrEmpty
	}

	svg, err := diagram.RenderSVG(d)
	if err != nil {
		return err
	}

	ac, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer ac.Close()

	single := len(opts.formats) == 1
	for _, format := range opts.formats {
		data, cached, err := c.renderFormat(ctx, ac, d, svg, format, opts.dpi)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		if single && opts.output == "-" {
			_, err := os.Stdout.Write(data)
			return err
		}
		path := outputPath(opts.output, format, single)
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		printStats(format, len(data), cached)
	}

	printSuccess("Rendered %d strings", len(d.Shapes))
	prog.done(fmt.Sprintf("Rendered %d formats", len(opts.formats)))
	return nil
}

// renderFormat produces one artifact. PNG and PDF go through the artifact
// cache, keyed by the SVG they are drawn from.
func (c *CLI) renderFormat(ctx context.Context, ac cache.Cache, d diagram.Diagram, svg []byte, format string, dpi float64) ([]byte, bool, error) {
	switch format {
	case formatSVG:
		return svg, false, nil
	case formatJSON:
		data, err := diagram.RenderJSON(d)
		return data, false, err
	}

	opts := cache.ArtifactKeyOpts{Format: format}
	if format == formatPNG {
		opts.DPI = dpi
	}
	key := cache.NewDefaultKeyer().ArtifactKey(cache.Hash(svg), opts)

	return cache.Fetch(ctx, ac, key, cache.DefaultTTL, func() ([]byte, error) {
		switch format {
		case formatPNG:
			return diagram.RenderPNG(d, diagram.WithDPI(dpi))
		case formatPDF:
			spinner := newSpinner(ctx, "Converting to PDF...")
			spinner.Start()
			defer spinner.Stop()
			return diagram.RenderPDF(ctx, d)
		}
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	})
}
