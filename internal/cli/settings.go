package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
)

// settingAliases maps short names accepted by "settings set" to storage keys.
var settingAliases = map[string]string{
	"width":           settings.KeyWidth,
	"side-gaps":       settings.KeySideGaps,
	"side-gap":        settings.KeySideGaps,
	"side-gaps-equal": settings.KeySideGapsEqual,
	"in-course-gap":   settings.KeyInCourseGap,
	"config":          settings.KeyConfig,
	"gauges":          settings.KeyConfig,
}

// settingKey resolves an alias or storage key.
func settingKey(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if key, ok := settingAliases[name]; ok {
		return key, nil
	}
	for _, key := range settings.Keys {
		if key == name {
			return key, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidSetting, "unknown setting %q", name)
}

// settingsCommand creates the settings management command.
func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the remembered inputs",
	}

	cmd.AddCommand(c.settingsShowCommand())
	cmd.AddCommand(c.settingsSetCommand())
	cmd.AddCommand(c.settingsResetCommand())
	cmd.AddCommand(c.settingsPathCommand())

	return cmd
}

func (c *CLI) settingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readSettings(cmd.Context())
			if err != nil {
				return err
			}
			for _, key := range settings.Keys {
				v, _ := s.Get(key)
				printSettingValue(key, v)
			}
			return nil
		},
	}
}

// printSettingValue prints one setting; multi-line values are indented.
func printSettingValue(key, value string) {
	lines := strings.Split(value, "\n")
	printKeyValue(key, lines[0])
	for _, line := range lines[1:] {
		fmt.Println(strings.Repeat(" ", 13) + StyleValue.Render(line))
	}
}

func (c *CLI) settingsSetCommand() *cobra.Command {
	keys := append(slices.Sorted(maps.Keys(settingAliases)), settings.Keys...)

	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one stored setting",
		Long: `Change one stored setting. Keys: width (inches), side-gaps ("start,end" or
one value, in thou), side-gaps-equal (true/false), in-course-gap (thou) and
config (courses separated by ";").`,
		Example: `  stringspacing settings set width 1.6875
  stringspacing settings set side-gaps 125,140
  stringspacing settings set config "10;13;17;26;36;46"`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, err := settingKey(args[0])
			if err != nil {
				return err
			}
			s, store, err := c.loadSettings(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if s, err = s.Set(key, args[1]); err != nil {
				return err
			}
			// Turning equal side gaps on also equalizes them.
			if key == settings.KeySideGapsEqual && s.SideGapsEqual {
				s = s.WithSideGap(0, s.SideGaps[0])
				err = settings.SaveKey(ctx, store, s, settings.KeySideGaps)
			}
			if err == nil {
				err = settings.SaveKey(ctx, store, s, key)
			}
			if err != nil {
				return fmt.Errorf("save settings: %w", err)
			}

			v, _ := s.Get(key)
			printSuccess("Set %s", key)
			printSettingValue(key, v)
			return nil
		},
	}
}

func (c *CLI) settingsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget every stored setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := settings.Reset(cmd.Context(), store); err != nil {
				return err
			}
			printSuccess("Settings reset to defaults")
			printDetail("Directory: %s", store.Path())
			return nil
		},
	}
}

func (c *CLI) settingsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore()
			if err != nil {
				return err
			}
			fmt.Println(store.Path())
			return nil
		},
	}
}
