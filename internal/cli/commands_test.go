package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/settings"
)

// run executes the root command in isolated config and cache directories.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	c.In = strings.NewReader(stdin)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func TestLayoutCommandJSON(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "layout", "--preset", "regular-slinky", "--format", "json")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var r layoutReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(r.Strings) != 6 || r.Preset != "Guitar: Regular Slinky" {
		t.Errorf("report = %d strings, preset %q", len(r.Strings), r.Preset)
	}
}

func TestLayoutPositionsFromBassEdge(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "layout", "--preset", "regular-slinky", "--format", "json")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var r layoutReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatal(err)
	}
	if len(r.Strings) != 6 {
		t.Fatalf("got %d strings, want 6", len(r.Strings))
	}
	// The last listed gauge (46) sits at the reference edge.
	first, last := r.Strings[0], r.Strings[5]
	if first.Gauge != 0.046 || first.Left != r.StartGap {
		t.Errorf("first string = %+v, want gauge 0.046 at %v", first, r.StartGap)
	}
	if last.Gauge != 0.01 || last.Left <= first.Left {
		t.Errorf("last string = %+v, want gauge 0.010 beyond the first", last)
	}

	long := New(io.Discard, LogInfo).layoutCommand().Long
	if !strings.Contains(long, "bass edge") {
		t.Errorf("layout help should name the bass edge:\n%s", long)
	}
}

func TestLayoutSideGapConflicts(t *testing.T) {
	tests := [][]string{
		{"--side-gap", "120", "--start-gap", "100"},
		{"--side-gap", "120", "--end-gap", "100"},
	}
	for _, flags := range tests {
		t.Run(strings.Join(flags, " "), func(t *testing.T) {
			isolate(t)
			_, err := run(t, "", append([]string{"layout"}, flags...)...)
			if err == nil || !strings.Contains(err.Error(), "side-gap") {
				t.Errorf("layout %v error = %v, want side-gap conflict", flags, err)
			}
		})
	}

	isolate(t)
	if _, err := run(t, "", "layout", "--start-gap", "100", "--end-gap", "120"); err != nil {
		t.Errorf("start and end gaps together: %v", err)
	}
}

func TestLayoutCommandSave(t *testing.T) {
	isolate(t)

	if _, err := run(t, "13\n10\n", "layout", "--gauges", "-", "--width", "1.5", "--save"); err != nil {
		t.Fatalf("layout --save: %v", err)
	}

	out, err := run(t, "", "layout", "--format", "json")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var r layoutReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatal(err)
	}
	if r.Width != 1.5 || len(r.Strings) != 2 || r.Strings[0].Gauge != 0.01 {
		t.Errorf("saved settings not used: %+v", r)
	}
}

func TestLayoutCommandInvalidWidth(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "layout", "--width", "wide")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestPresetsApplyCommand(t *testing.T) {
	isolate(t)
	ctx := context.Background()

	if _, err := run(t, "", "presets", "apply", "Bass Slinky"); err != nil {
		t.Fatalf("presets apply: %v", err)
	}

	c := New(io.Discard, LogInfo)
	s, err := c.readSettings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.Config != "50\n70\n85\n105" {
		t.Errorf("stored config = %q", s.Config)
	}

	if _, err := run(t, "", "presets", "apply", "banjo"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("unknown preset error = %v", err)
	}
}

func TestSettingsSetAndReset(t *testing.T) {
	isolate(t)
	ctx := context.Background()
	c := New(io.Discard, LogInfo)

	if _, err := run(t, "", "settings", "set", "side-gaps-equal", "false"); err != nil {
		t.Fatalf("set equal: %v", err)
	}
	if _, err := run(t, "", "settings", "set", "side-gaps", "120,140"); err != nil {
		t.Fatalf("set gaps: %v", err)
	}
	s, _ := c.readSettings(ctx)
	if s.SideGaps != [2]string{"120", "140"} || s.SideGapsEqual {
		t.Errorf("side gaps = %v equal=%v", s.SideGaps, s.SideGapsEqual)
	}

	if _, err := run(t, "", "settings", "set", "side-gaps-equal", "true"); err != nil {
		t.Fatalf("set equal: %v", err)
	}
	s, _ = c.readSettings(ctx)
	if s.SideGaps != [2]string{"120", "120"} {
		t.Errorf("turning equal gaps on should equalize, got %v", s.SideGaps)
	}

	if _, err := run(t, "", "settings", "set", "nut", "1"); !errors.Is(err, errors.ErrCodeInvalidSetting) {
		t.Errorf("unknown setting error = %v", err)
	}

	if _, err := run(t, "", "settings", "reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	s, _ = c.readSettings(ctx)
	if s != settings.Defaults() {
		t.Errorf("after reset = %+v", s)
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "nut.svg")

	if _, err := run(t, "", "render", "--preset", "daddario-ej74", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "<line"); n != 8 {
		t.Errorf("got %d centerlines, want 8", n)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "custom.toml")
	settingsDir := filepath.Join(dir, "elsewhere")
	if err := os.WriteFile(cfg, []byte("[settings]\ndir = \""+filepath.ToSlash(settingsDir)+"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "", "--config", cfg, "settings", "set", "width", "2"); err != nil {
		t.Fatalf("set with --config: %v", err)
	}
	if _, err := os.Stat(filepath.Join(settingsDir, settings.KeyWidth+".json")); err != nil {
		t.Errorf("setting not written to configured dir: %v", err)
	}
}
