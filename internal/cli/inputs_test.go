package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/preset"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
)

func TestInputFlagsApply(t *testing.T) {
	catalog := preset.Builtin()

	tests := []struct {
		name  string
		flags inputFlags
		check func(t *testing.T, s settings.Settings)
	}{
		{
			name:  "no flags keeps settings",
			flags: inputFlags{},
			check: func(t *testing.T, s settings.Settings) {
				if s != settings.Defaults() {
					t.Errorf("got %+v, want defaults", s)
				}
			},
		},
		{
			name:  "preset",
			flags: inputFlags{preset: "regular-slinky"},
			check: func(t *testing.T, s settings.Settings) {
				if s.Config != "10\n13\n17\n26\n36\n46" {
					t.Errorf("config = %q", s.Config)
				}
			},
		},
		{
			name:  "gauges win over preset",
			flags: inputFlags{preset: "Bass Slinky", gauges: "45;65"},
			check: func(t *testing.T, s settings.Settings) {
				if s.Config != "45\n65" {
					t.Errorf("config = %q", s.Config)
				}
			},
		},
		{
			name:  "side gap sets both",
			flags: inputFlags{sideGap: "125"},
			check: func(t *testing.T, s settings.Settings) {
				if s.SideGaps != [2]string{"125", "125"} {
					t.Errorf("side gaps = %v", s.SideGaps)
				}
			},
		},
		{
			name:  "start gap with equal gaps sets both",
			flags: inputFlags{startGap: "100"},
			check: func(t *testing.T, s settings.Settings) {
				if s.SideGaps != [2]string{"100", "100"} || !s.SideGapsEqual {
					t.Errorf("side gaps = %v equal=%v", s.SideGaps, s.SideGapsEqual)
				}
			},
		},
		{
			name:  "different start and end gaps",
			flags: inputFlags{startGap: "100", endGap: "140"},
			check: func(t *testing.T, s settings.Settings) {
				if s.SideGaps != [2]string{"100", "140"} || s.SideGapsEqual {
					t.Errorf("side gaps = %v equal=%v", s.SideGaps, s.SideGapsEqual)
				}
			},
		},
		{
			name:  "width and in-course gap",
			flags: inputFlags{width: "1.75", inCourseGap: "60"},
			check: func(t *testing.T, s settings.Settings) {
				if s.Width != "1.75" || s.InCourseGap != "60" {
					t.Errorf("got width %q in-course %q", s.Width, s.InCourseGap)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.flags.apply(settings.Defaults(), catalog, strings.NewReader(""))
			if err != nil {
				t.Fatalf("apply error: %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestInputFlagsUnknownPreset(t *testing.T) {
	f := inputFlags{preset: "no such strings"}
	_, err := f.apply(settings.Defaults(), preset.Builtin(), nil)
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodePresetNotFound)
	}
}

func TestReadGauges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauges.txt")
	if err := os.WriteFile(path, []byte("10\n13\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in    string
		stdin string
		want  string
	}{
		{"10;13", "", "10;13"},
		{"-", "46\n36\n", "46\n36\n"},
		{"@" + path, "", "10\n13\n"},
	}
	for _, tt := range tests {
		got, err := readGauges(tt.in, strings.NewReader(tt.stdin))
		if err != nil {
			t.Errorf("readGauges(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readGauges(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	_, err := readGauges("@"+filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("missing file error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}
