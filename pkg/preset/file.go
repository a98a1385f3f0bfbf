package preset

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
)

// DefaultGroup is used for user presets that do not name a group.
const DefaultGroup = "User"

// presetFile is the TOML layout of a user preset file:
//
//	[[preset]]
//	group = "Bass"
//	name = "Flatwound 45-105"
//	courses = ["45", "65", "80", "105"]
type presetFile struct {
	Presets []struct {
		Group   string   `toml:"group"`
		Name    string   `toml:"name"`
		Courses []string `toml:"courses"`
	} `toml:"preset"`
}

// LoadFile reads user presets from a TOML file. A missing file yields an
// empty catalog.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes user presets from TOML data.
func Parse(data []byte) (Catalog, error) {
	var f presetFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode presets")
	}

	out := make(Catalog, 0, len(f.Presets))
	for i, p := range f.Presets {
		if err := errors.ValidatePresetName(p.Name); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i+1, err)
		}
		group := p.Group
		if group == "" {
			group = DefaultGroup
		} else if err := errors.ValidatePresetName(group); err != nil {
			return nil, fmt.Errorf("preset %q group: %w", p.Name, err)
		}
		if len(p.Courses) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "preset %q has no courses", p.Name)
		}

		courses := make([]string, len(p.Courses))
		for j, c := range p.Courses {
			c = strings.TrimSpace(c)
			if strings.Contains(c, courseSep) || strings.Contains(c, "\n") {
				return nil, errors.New(errors.ErrCodeInvalidPreset, "preset %q course %d: one course per entry", p.Name, j+1)
			}
			courses[j] = c
		}

		out = append(out, Preset{
			Group: group,
			Name:  p.Name,
			Value: strings.Join(courses, courseSep),
			User:  true,
		})
	}
	return out, nil
}

// WithUser returns the built-in catalog followed by the user presets in path.
func WithUser(path string) (Catalog, error) {
	user, err := LoadFile(path)
	if err != nil {
		return Builtin(), err
	}
	return append(Builtin(), user...), nil
}
