// Package preset provides named string gauge sets.
//
// A preset's value lists courses separated by ";" with comma-separated
// gauges in thou, for example "11, 11;15, 15;26, 26;40, 40". Applying a
// preset replaces the whole configuration text with [Preset.Config].
//
// The built-in catalog covers common guitar, bass and mandolin sets. Users
// can add their own in a TOML file, see [LoadFile].
package preset

import (
	"strings"

	"github.com/brian-c/string-spacing-calculator/pkg/spacing"
)

// courseSep separates courses in a preset value.
const courseSep = ";"

// Preset is a named set of gauges.
type Preset struct {
	Group string `json:"group" yaml:"group"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	User  bool   `json:"user,omitempty" yaml:"user,omitempty"`
}

// Config returns the preset as configuration text, one course per line.
func (p Preset) Config() string {
	return strings.ReplaceAll(p.Value, courseSep, "\n")
}

// Courses parses the preset into courses in layout order.
func (p Preset) Courses() []spacing.Course {
	return spacing.ParseCourses(p.Config())
}

// Slug returns a lowercase, dash-separated form of the name for use on the
// command line ("D'Addario EJ74" becomes "daddario-ej74").
func (p Preset) Slug() string {
	return Slugify(p.Name)
}

// Slugify lowercases s, drops punctuation and joins words with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		case r == '\'' || r == '.':
			// Dropped without splitting the word.
		default:
			dash = true
		}
	}
	return b.String()
}

// ValueOf returns the preset value matching configuration text: lines are
// trimmed and joined with ";". Blank lines are kept, matching the text as
// typed.
func ValueOf(config string) string {
	lines := strings.Split(config, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, courseSep)
}

// Catalog is an ordered list of presets.
type Catalog []Preset

var builtin = Catalog{
	{Group: "Guitar", Name: "Regular Slinky", Value: "10;13;17;26;36;46"},
	{Group: "Guitar", Name: "12-String Slinky", Value: "8, 8;10, 10;8, 14;11, 24;17, 32;22, 40"},
	{Group: "Bass", Name: "Bass Slinky", Value: "50;70;85;105"},
	{Group: "Bass", Name: "GFS Brite Flats (bass)", Value: "49;62;84;108"},
	{Group: "Mandolin", Name: "D'Addario EJ74", Value: "11, 11;15, 15;26, 26;40, 40"},
	{Group: "Mandolin", Name: "D'Addario EJ63i (doubled)", Value: "12, 12;16, 16;24, 24;36, 36"},
}

// Builtin returns a copy of the built-in catalog.
func Builtin() Catalog {
	out := make(Catalog, len(builtin))
	copy(out, builtin)
	return out
}

// Find returns the preset whose name or slug equals name, ignoring case.
func (c Catalog) Find(name string) (Preset, bool) {
	slug := Slugify(name)
	for _, p := range c {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	for _, p := range c {
		if slug != "" && p.Slug() == slug {
			return p, true
		}
	}
	return Preset{}, false
}

// Match returns the preset whose value equals the configuration text, so a
// selector can show which preset, if any, is current.
func (c Catalog) Match(config string) (Preset, bool) {
	v := ValueOf(config)
	for _, p := range c {
		if p.Value == v {
			return p, true
		}
	}
	return Preset{}, false
}

// Groups returns group names in first-seen order.
func (c Catalog) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, p := range c {
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
	}
	return groups
}

// InGroup returns the presets of one group in catalog order.
func (c Catalog) InGroup(group string) Catalog {
	var out Catalog
	for _, p := range c {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out
}
