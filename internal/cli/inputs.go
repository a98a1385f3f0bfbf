package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/preset"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
	"github.com/brian-c/string-spacing-calculator/pkg/spacing"
)

// inputFlags overlays command-line values onto the stored settings.
// Empty strings leave the stored value alone.
type inputFlags struct {
	width       string // inches
	startGap    string // thou
	endGap      string // thou
	sideGap     string // thou, both edges
	inCourseGap string // thou
	gauges      string // configuration text, "@file" or "-"
	preset      string // preset name or slug
	save        bool   // persist the overlaid values
}

func addInputFlags(cmd *cobra.Command, f *inputFlags) {
	cmd.Flags().StringVar(&f.width, "width", "", "nut or saddle width in inches")
	cmd.Flags().StringVar(&f.startGap, "start-gap", "", "clearance before the first string, in thou")
	cmd.Flags().StringVar(&f.endGap, "end-gap", "", "clearance after the last string, in thou")
	cmd.Flags().StringVar(&f.sideGap, "side-gap", "", "clearance at both edges, in thou")
	cmd.Flags().StringVar(&f.inCourseGap, "in-course-gap", "", "gap between strings of one course, in thou")
	cmd.Flags().StringVarP(&f.gauges, "gauges", "g", "", `courses separated by ";" (or "@file", or "-" for stdin)`)
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "use the gauges of a named preset")
	cmd.Flags().BoolVar(&f.save, "save", false, "remember these values for next time")
	cmd.MarkFlagsMutuallyExclusive("side-gap", "start-gap")
	cmd.MarkFlagsMutuallyExclusive("side-gap", "end-gap")

	_ = cmd.RegisterFlagCompletionFunc("preset", completePresets)
}

// completePresets offers built-in preset slugs.
func completePresets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, p := range preset.Builtin() {
		if strings.HasPrefix(p.Slug(), toComplete) {
			out = append(out, p.Slug()+"\t"+p.Group+": "+p.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// apply returns s with the flag values laid over it. The preset is applied
// before --gauges so that explicit gauges win.
func (f *inputFlags) apply(s settings.Settings, catalog preset.Catalog, stdin io.Reader) (settings.Settings, error) {
	if f.preset != "" {
		p, ok := catalog.Find(f.preset)
		if !ok {
			return s, errors.New(errors.ErrCodePresetNotFound, "no preset named %q", f.preset)
		}
		s.Config = p.Config()
	}
	if f.gauges != "" {
		text, err := readGauges(f.gauges, stdin)
		if err != nil {
			return s, err
		}
		s.Config = strings.ReplaceAll(text, ";", "\n")
	}
	if f.width != "" {
		s.Width = f.width
	}
	if f.sideGap != "" {
		s.SideGaps = [2]string{f.sideGap, f.sideGap}
	}
	if f.startGap != "" {
		s = s.WithSideGap(0, f.startGap)
	}
	if f.endGap != "" {
		s = s.WithSideGap(1, f.endGap)
	}
	if f.startGap != "" && f.endGap != "" && f.startGap != f.endGap {
		s.SideGapsEqual = false
		s.SideGaps = [2]string{f.startGap, f.endGap}
	}
	if f.inCourseGap != "" {
		s.InCourseGap = f.inCourseGap
	}
	return s, nil
}

// readGauges resolves the --gauges value.
func readGauges(v string, stdin io.Reader) (string, error) {
	switch {
	case v == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read gauges from stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(v, "@"):
		path := strings.TrimPrefix(v, "@")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read gauges")
		}
		return string(data), nil
	}
	return v, nil
}

// resolve loads stored settings, applies the flags and computes the layout.
// With --save the overlaid settings are written back.
func (c *CLI) resolve(ctx context.Context, f *inputFlags) (settings.Settings, spacing.Layout, error) {
	logger := loggerFromContext(ctx)

	s, store, err := c.loadSettings(ctx)
	if err != nil {
		return s, spacing.Layout{}, err
	}
	defer store.Close()

	catalog, err := c.catalog()
	if err != nil {
		logger.Warn("Ignoring user presets", "err", err)
	}

	s, err = f.apply(s, catalog, c.In)
	if err != nil {
		return s, spacing.Layout{}, err
	}

	l, err := s.Layout()
	if err != nil {
		return s, l, err
	}
	logger.Debug("Computed layout", "courses", len(l.Courses), "between", l.Between)

	if f.save {
		if err := settings.Save(ctx, store, s); err != nil {
			return s, l, fmt.Errorf("save settings: %w", err)
		}
		logger.Info("Saved settings", "dir", store.Path())
	}
	return s, l, nil
}
