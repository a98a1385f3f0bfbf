package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/preset"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
	"github.com/brian-c/string-spacing-calculator/pkg/spacing"
)

const (
	layoutTable = "table"
	layoutJSON  = "json"
	layoutYAML  = "yaml"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var in inputFlags
	var format string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print where each string goes",
		Long: `Compute the string spacing for the stored settings, overlaid with any flags,
and print each string's gap and centerline. Positions are measured from the
bass edge: the last course in the gauge list is laid out first.`,
		Example: `  stringspacing layout --preset regular-slinky --width 1.6875
  stringspacing layout -g "10;13;17;26;36;46" --side-gap 125 --save
  stringspacing layout --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, l, err := c.resolve(cmd.Context(), &in)
			if err != nil {
				return err
			}
			catalog, _ := c.catalog()
			report := newLayoutReport(s, l, catalog)
			return writeLayout(cmd.OutOrStdout(), report, format)
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVarP(&format, "format", "f", layoutTable, "output format: table, json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{layoutTable, layoutJSON, layoutYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// layoutReport is the printable result of a layout computation.
type layoutReport struct {
	Settings          settings.Settings `json:"settings" yaml:"settings"`
	Width             float64           `json:"width" yaml:"width"`
	StartGap          float64           `json:"start_gap" yaml:"start_gap"`
	EndGap            float64           `json:"end_gap" yaml:"end_gap"`
	InCourseGap       float64           `json:"in_course_gap" yaml:"in_course_gap"`
	InCourseGapUnused bool              `json:"in_course_gap_unused" yaml:"in_course_gap_unused"`
	CoursesSpace      float64           `json:"courses_space" yaml:"courses_space"`
	Between           float64           `json:"between" yaml:"between"`
	Overfull          bool              `json:"overfull" yaml:"overfull"`
	Preset            string            `json:"preset,omitempty" yaml:"preset,omitempty"`
	Strings           []stringReport    `json:"strings" yaml:"strings"`
}

// stringReport places one string. Positions are inches from the edge of the
// last listed course, which is the bass side for a treble-first list.
type stringReport struct {
	Course int     `json:"course" yaml:"course"`
	Gauge  float64 `json:"gauge" yaml:"gauge"`
	Gap    float64 `json:"gap" yaml:"gap"`
	Left   float64 `json:"left" yaml:"left"`
	Center float64 `json:"center" yaml:"center"`
}

func newLayoutReport(s settings.Settings, l spacing.Layout, catalog preset.Catalog) layoutReport {
	r := layoutReport{
		Settings:          s,
		Width:             l.Params.Width,
		StartGap:          l.Params.StartGap,
		EndGap:            l.Params.EndGap,
		InCourseGap:       l.Params.InCourseGap,
		InCourseGapUnused: spacing.InCourseGapUnused(l.Courses),
		CoursesSpace:      l.CoursesSpace,
		Between:           l.Between,
		Overfull:          l.Overfull(),
	}
	if p, ok := catalog.Match(s.Config); ok {
		r.Preset = p.Group + ": " + p.Name
	}

	var course []int
	for i, c := range l.Courses {
		for range c {
			course = append(course, i+1)
		}
	}
	var offset float64
	for i, p := range l.Strings() {
		left := offset + p.Gap
		offset = left + p.Width
		r.Strings = append(r.Strings, stringReport{
			Course: course[i],
			Gauge:  p.Width,
			Gap:    p.Gap,
			Left:   left,
			Center: left + p.Width/2,
		})
	}
	return r
}

func writeLayout(w io.Writer, r layoutReport, format string) error {
	switch format {
	case layoutTable, "":
		_, err := io.WriteString(w, renderLayoutTable(r))
		return err
	case layoutJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case layoutYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'table', 'json', or 'yaml')", format)
}

// renderLayoutTable formats the summary and placement table.
func renderLayoutTable(r layoutReport) string {
	var b strings.Builder
	kv := func(key, value string) {
		keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
		b.WriteString(keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n")
	}

	if len(r.Strings) == 0 {
		b.WriteString(StyleWarning.Render("No strings configured") + "\n")
		return b.String()
	}

	kv("Width", inches(r.Width))
	kv("Side gaps", thou(r.StartGap)+" / "+thou(r.EndGap)+" thou")
	inCourse := thou(r.InCourseGap) + " thou"
	if r.InCourseGapUnused {
		inCourse += " " + StyleDim.Render("(Unused)")
	}
	kv("In-course gap", inCourse)
	kv("Between courses", inches(r.Between))
	if r.Preset != "" {
		kv("Preset", r.Preset)
	}
	b.WriteString("\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(r.Strings))
	for i, s := range r.Strings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Course),
			thou(s.Gauge),
			inches(s.Gap),
			inches(s.Left),
			inches(s.Center),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Course", "Gauge", "Gap", "Left", "Center").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 5 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	if r.Overfull {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("! Strings need %s but only %s fits between the side gaps",
			inches(r.CoursesSpace), inches(r.Width-r.StartGap-r.EndGap))) + "\n")
	}
	return b.String()
}
