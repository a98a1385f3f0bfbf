package spacing

import (
	"math"
	"testing"
)

var defaultParams = Params{Width: 1.625, StartGap: 0.150, EndGap: 0.150, InCourseGap: 0.070}

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		course Course
		want   []float64
	}{
		{"empty", Course{}, nil},
		{"single", Course{0.046}, []float64{0.046}},
		{"pair", Course{0.011, 0.012}, []float64{0.011, 0.07, 0.012}},
		{"triple", Course{0.01, 0.02, 0.03}, []float64{0.01, 0.07, 0.02, 0.07, 0.03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.course, 0.07)
			if len(got) != len(tt.want) {
				t.Fatalf("Expand() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("Expand()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestComputeConservation(t *testing.T) {
	configs := []string{
		"49\n62\n84\n108",
		"10\n13\n17\n26\n36\n46",
		"8, 8\n10, 10\n8, 14\n11, 24\n17, 32\n22, 40",
		"11, 11\n15, 15\n26, 26\n40, 40",
		"10\n10, 10, 10\n46",
		"500\n500\n500", // over-full
	}

	for _, text := range configs {
		l := Calculate(defaultParams, text)
		if got := l.Sum(); math.Abs(got-defaultParams.Width) > eps {
			t.Errorf("Calculate(%q).Sum() = %v, want %v", text, got, defaultParams.Width)
		}
	}
}

func TestComputeSingleStringCourses(t *testing.T) {
	l := Calculate(defaultParams, "10\n13\n17\n26\n36\n46")

	strings := l.Strings()
	if len(strings) != 6 {
		t.Fatalf("got %d placements, want 6", len(strings))
	}
	if strings[0].Gap != defaultParams.StartGap {
		t.Errorf("first gap = %v, want start gap %v", strings[0].Gap, defaultParams.StartGap)
	}
	for i, p := range strings[1:] {
		if p.Gap != l.Between {
			t.Errorf("placement %d gap = %v, want %v", i+1, p.Gap, l.Between)
		}
	}

	wantSpace := 0.010 + 0.013 + 0.017 + 0.026 + 0.036 + 0.046
	if !approxEqual(l.CoursesSpace, wantSpace) {
		t.Errorf("CoursesSpace = %v, want %v", l.CoursesSpace, wantSpace)
	}
	wantBetween := (defaultParams.Width - 0.3 - wantSpace) / 5
	if !approxEqual(l.Between, wantBetween) {
		t.Errorf("Between = %v, want %v", l.Between, wantBetween)
	}
}

func TestComputeOrderReversal(t *testing.T) {
	l := Calculate(defaultParams, "10\n20\n30")
	strings := l.Strings()

	if !approxEqual(strings[0].Width, 0.030) {
		t.Errorf("leftmost string = %v, want 0.030 (last line)", strings[0].Width)
	}
	if !approxEqual(strings[len(strings)-1].Width, 0.010) {
		t.Errorf("rightmost string = %v, want 0.010 (first line)", strings[len(strings)-1].Width)
	}
}

func TestComputeDoubledCourses(t *testing.T) {
	l := Calculate(defaultParams, "11, 12\n40, 41")
	chunks := l.Chunks()

	// start, 40, icg, 41, between, 11, icg, 12, end
	want := []Placement{
		{Gap: 0.150, Width: 0.040},
		{Gap: 0.070, Width: 0.041},
		{Gap: l.Between, Width: 0.011},
		{Gap: 0.070, Width: 0.012},
		{Gap: 0.150, Width: 0},
	}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i := range want {
		if !approxEqual(chunks[i].Gap, want[i].Gap) || !approxEqual(chunks[i].Width, want[i].Width) {
			t.Errorf("chunk[%d] = %+v, want %+v", i, chunks[i], want[i])
		}
	}
	if l.StringCount() != 4 {
		t.Errorf("StringCount() = %d, want 4", l.StringCount())
	}
}

func TestComputeTerminalChunk(t *testing.T) {
	l := Calculate(defaultParams, "10\n20")
	chunks := l.Chunks()

	if len(l.Lengths())%2 != 1 {
		t.Errorf("Lengths() has even length %d, want odd", len(l.Lengths()))
	}
	last := chunks[len(chunks)-1]
	if last.Width != 0 || last.Gap != defaultParams.EndGap {
		t.Errorf("terminal chunk = %+v, want end gap with zero width", last)
	}
}

func TestComputeSingleCourse(t *testing.T) {
	l := Calculate(defaultParams, "46")

	if l.Between != 0 {
		t.Errorf("Between = %v, want 0", l.Between)
	}
	for _, n := range l.Lengths() {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			t.Fatalf("Lengths() contains non-finite value: %v", l.Lengths())
		}
	}
	strings := l.Strings()
	if len(strings) != 1 || !approxEqual(strings[0].Width, 0.046) {
		t.Errorf("Strings() = %+v, want one 0.046 string", strings)
	}
}

func TestComputeEmpty(t *testing.T) {
	l := Calculate(defaultParams, "not a gauge")

	if !l.Empty() {
		t.Error("Empty() = false, want true")
	}
	if len(l.Chunks()) != 0 || len(l.Strings()) != 0 || len(l.Lengths()) != 0 {
		t.Error("empty layout should have no placements")
	}
	if l.Sum() != 0 {
		t.Errorf("Sum() = %v, want 0", l.Sum())
	}
}

func TestComputeOverfull(t *testing.T) {
	l := Calculate(Params{Width: 0.5, StartGap: 0.15, EndGap: 0.15}, "100\n100\n100")

	if !l.Overfull() {
		t.Error("Overfull() = false, want true")
	}
	if l.Between >= 0 {
		t.Errorf("Between = %v, want negative", l.Between)
	}
	if !approxEqual(l.Sum(), 0.5) {
		t.Errorf("Sum() = %v, want 0.5", l.Sum())
	}
}

func TestLengthsReturnsCopy(t *testing.T) {
	l := Calculate(defaultParams, "10\n20")
	got := l.Lengths()
	got[0] = 99

	if l.Lengths()[0] == 99 {
		t.Error("Lengths() should return a copy")
	}
}

func TestInCourseGapUnused(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"single strings", "10\n13\n17", true},
		{"one doubled course", "10\n13, 13\n17", false},
		{"all doubled", "11, 11\n15, 15", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCourseGapUnused(ParseCourses(tt.text)); got != tt.want {
				t.Errorf("InCourseGapUnused(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
