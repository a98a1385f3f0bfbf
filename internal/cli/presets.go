package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/preset"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"preset"},
		Short:   "List and apply string set presets",
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsShowCommand())
	cmd.AddCommand(c.presetsApplyCommand())

	return cmd
}

func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets by instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalog()
			if err != nil {
				printWarning("Ignoring user presets: %s", errors.UserMessage(err))
			}
			s, err := c.readSettings(cmd.Context())
			if err != nil {
				return err
			}
			current, _ := catalog.Match(s.Config)

			for i, group := range catalog.Groups() {
				if i > 0 {
					printNewline()
				}
				fmt.Println(StyleTitle.Render(group))
				for _, p := range catalog.InGroup(group) {
					name := p.Name
					if p == current {
						name = StyleSuccess.Render(name + " *")
					}
					printKeyValue(p.Slug(), name)
					printDetail("%s", p.Value)
				}
			}
			printNewline()
			printNextStep("Apply one", appName+" presets apply <name>")
			return nil
		},
	}
}

func (c *CLI) presetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <name>",
		Short:             "Show the gauges of a preset",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.findPreset(args[0])
			if err != nil {
				return err
			}
			printKeyValue("Group", p.Group)
			printKeyValue("Name", p.Name)
			printKeyValue("Courses", fmt.Sprintf("%d", len(p.Courses())))
			printNewline()
			fmt.Println(p.Config())
			return nil
		},
	}
}

func (c *CLI) presetsApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [name]",
		Short: "Use a preset's gauges for subsequent layouts",
		Long: `Replace the stored gauges with a preset's. Without a name, pick one
interactively.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, store, err := c.loadSettings(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var p preset.Preset
			if len(args) == 1 {
				if p, err = c.findPreset(args[0]); err != nil {
					return err
				}
			} else {
				selected, err := c.pickPreset(ctx, s.Config)
				if err != nil {
					return err
				}
				if selected == nil {
					printInfo("No preset selected")
					return nil
				}
				p = *selected
			}

			s.Config = p.Config()
			if err := settings.SaveKey(ctx, store, s, settings.KeyConfig); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			printSuccess("Applied %s", StyleHighlight.Render(p.Group+": "+p.Name))
			printDetail("%s", strings.ReplaceAll(p.Config(), "\n", "  "))
			printNextStep("See the layout", appName+" layout")
			return nil
		},
	}
}

func (c *CLI) findPreset(name string) (preset.Preset, error) {
	catalog, err := c.catalog()
	if err != nil {
		return preset.Preset{}, err
	}
	p, ok := catalog.Find(name)
	if !ok {
		return preset.Preset{}, errors.New(errors.ErrCodePresetNotFound, "no preset named %q", name)
	}
	return p, nil
}

// pickPreset runs the interactive picker. It returns nil if the user quits.
func (c *CLI) pickPreset(ctx context.Context, config string) (*preset.Preset, error) {
	catalog, err := c.catalog()
	if err != nil {
		loggerFromContext(ctx).Warn("Ignoring user presets", "err", err)
	}
	final, err := tea.NewProgram(NewPresetListModel(catalog, config), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, fmt.Errorf("preset picker: %w", err)
	}
	return final.(PresetListModel).Selected, nil
}
