// Package settings persists the last-entered calculator inputs.
//
// Each value is stored under its own key and JSON-encoded individually, so
// a missing or unreadable key falls back to its default without affecting
// the others. [Settings] holds the values exactly as entered (strings in
// inches or thou); [Settings.Params] resolves them into calculator
// parameters.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/spacing"
)

// Storage keys.
const (
	KeyWidth         = "width-value"
	KeySideGaps      = "side-gap-values"
	KeySideGapsEqual = "side-gaps-equal"
	KeyInCourseGap   = "in-course-gap-value"
	KeyConfig        = "config-value"
)

// Keys lists every storage key in display order.
var Keys = []string{KeyWidth, KeySideGaps, KeySideGapsEqual, KeyInCourseGap, KeyConfig}

// Settings is an immutable snapshot of the calculator inputs as entered.
type Settings struct {
	Width         string    `json:"width" yaml:"width"`                   // inches
	SideGaps      [2]string `json:"side_gaps" yaml:"side_gaps"`           // start and end gap, thou
	SideGapsEqual bool      `json:"side_gaps_equal" yaml:"side_gaps_equal"` // keep both side gaps the same
	InCourseGap   string    `json:"in_course_gap" yaml:"in_course_gap"`   // thou
	Config        string    `json:"config" yaml:"config"`                 // one course per line
}

// Defaults returns the values used when nothing is stored.
func Defaults() Settings {
	return Settings{
		Width:         strconv.FormatFloat(1+5.0/8, 'f', -1, 64),
		SideGaps:      [2]string{"150", "150"},
		SideGapsEqual: true,
		InCourseGap:   "70",
		Config:        "49\n62\n84\n108",
	}
}

// Load reads every key from store. Keys that are missing or cannot be
// decoded keep their default.
func Load(ctx context.Context, store Store) (Settings, error) {
	s := Defaults()
	targets := s.targets()
	for _, key := range Keys {
		data, ok, err := store.Get(ctx, key)
		if err != nil {
			return Defaults(), err
		}
		if !ok {
			continue
		}
		if err := decodeInto(data, targets[key]); err != nil {
			continue
		}
	}
	return s, nil
}

// decodeInto decodes data into target, leaving target untouched on failure.
func decodeInto(data []byte, target any) error {
	switch t := target.(type) {
	case *string:
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*t = v
	case *bool:
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*t = v
	case *[2]string:
		var v [2]string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*t = v
	}
	return nil
}

// Save writes every key to store.
func Save(ctx context.Context, store Store, s Settings) error {
	for _, key := range Keys {
		if err := SaveKey(ctx, store, s, key); err != nil {
			return err
		}
	}
	return nil
}

// SaveKey writes a single key of s to store.
func SaveKey(ctx context.Context, store Store, s Settings, key string) error {
	target, ok := s.targets()[key]
	if !ok {
		return errors.New(errors.ErrCodeInvalidSetting, "unknown setting %q", key)
	}
	data, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, data)
}

// Reset deletes every key so the defaults apply again.
func Reset(ctx context.Context, store Store) error {
	for _, key := range Keys {
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) targets() map[string]any {
	return map[string]any{
		KeyWidth:         &s.Width,
		KeySideGaps:      &s.SideGaps,
		KeySideGapsEqual: &s.SideGapsEqual,
		KeyInCourseGap:   &s.InCourseGap,
		KeyConfig:        &s.Config,
	}
}

// WithSideGap returns a copy with side gap index (0 for start, 1 for end)
// set to value. When the side gaps are kept equal both change.
func (s Settings) WithSideGap(index int, value string) Settings {
	if s.SideGapsEqual {
		s.SideGaps = [2]string{value, value}
		return s
	}
	if index == 0 || index == 1 {
		s.SideGaps[index] = value
	}
	return s
}

// Params resolves the entered values into calculator parameters in inches.
func (s Settings) Params() (spacing.Params, error) {
	width, err := parseField("width", s.Width)
	if err != nil {
		return spacing.Params{}, err
	}
	start, err := parseField("start gap", s.SideGaps[0])
	if err != nil {
		return spacing.Params{}, err
	}
	end, err := parseField("end gap", s.SideGaps[1])
	if err != nil {
		return spacing.Params{}, err
	}
	inCourse, err := parseField("in-course gap", s.InCourseGap)
	if err != nil {
		return spacing.Params{}, err
	}
	return spacing.Params{
		Width:       width,
		StartGap:    start * spacing.Thou,
		EndGap:      end * spacing.Thou,
		InCourseGap: inCourse * spacing.Thou,
	}, nil
}

// Courses parses the configuration text into courses in layout order.
func (s Settings) Courses() []spacing.Course {
	return spacing.ParseCourses(s.Config)
}

// Layout resolves the settings and computes the spacing layout.
func (s Settings) Layout() (spacing.Layout, error) {
	p, err := s.Params()
	if err != nil {
		return spacing.Layout{}, err
	}
	return spacing.Compute(p, s.Courses()), nil
}

func parseField(field, value string) (float64, error) {
	n, ok := spacing.ParseNumber(value)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", field, value)
	}
	return n, nil
}

// Get returns the value of key formatted for display.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case KeyWidth:
		return s.Width, nil
	case KeySideGaps:
		return s.SideGaps[0] + "," + s.SideGaps[1], nil
	case KeySideGapsEqual:
		return strconv.FormatBool(s.SideGapsEqual), nil
	case KeyInCourseGap:
		return s.InCourseGap, nil
	case KeyConfig:
		return s.Config, nil
	}
	return "", errors.New(errors.ErrCodeInvalidSetting, "unknown setting %q", key)
}

// Set returns a copy with key set from its display form. Side gaps take
// "start,end" or a single value; a single value, or side gaps kept equal,
// sets both. The configuration accepts ";" between courses as well as
// newlines.
func (s Settings) Set(key, value string) (Settings, error) {
	switch key {
	case KeyWidth, KeyInCourseGap:
		if _, ok := spacing.ParseNumber(value); !ok {
			return s, errors.New(errors.ErrCodeInvalidSetting, "%s: %q is not a number", key, value)
		}
		if key == KeyWidth {
			s.Width = value
		} else {
			s.InCourseGap = value
		}
	case KeySideGaps:
		parts := strings.Split(value, ",")
		if len(parts) > 2 {
			return s, errors.New(errors.ErrCodeInvalidSetting, "%s: want \"start,end\" or a single value", key)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
			if _, ok := spacing.ParseNumber(parts[i]); !ok {
				return s, errors.New(errors.ErrCodeInvalidSetting, "%s: %q is not a number", key, parts[i])
			}
		}
		if len(parts) == 1 || s.SideGapsEqual {
			s = s.WithSideGap(0, parts[0])
			s.SideGaps[1] = s.SideGaps[0]
		} else {
			s.SideGaps = [2]string{parts[0], parts[1]}
		}
	case KeySideGapsEqual:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidSetting, err, "%s", key)
		}
		s.SideGapsEqual = b
	case KeyConfig:
		s.Config = strings.ReplaceAll(value, ";", "\n")
	default:
		return s, errors.New(errors.ErrCodeInvalidSetting, "unknown setting %q", key)
	}
	return s, nil
}
