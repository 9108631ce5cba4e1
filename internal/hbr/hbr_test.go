package hbr

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	p := DefaultPresets()
	if p.Len() != 17 {
		t.Fatalf("expected 17 presets, got %d", p.Len())
	}
	names := p.Names()
	if names[0] != "female-1:2.0-01" || names[len(names)-1] != "female-1:7.0-01" {
		t.Errorf("unexpected preset order: %v", names)
	}

	r, err := p.Lookup("female-1:2.0-01")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.UpperBodyLength-1.0/3) > 1e-12 {
		t.Errorf("expected 1/3 upper body, got %v", r.UpperBodyLength)
	}
	if math.Abs(r.Heads()-2.05) > 1e-9 {
		t.Errorf("expected 2.05 heads, got %v", r.Heads())
	}

	if _, err := p.Lookup("male-1:8"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetHeadCounts(t *testing.T) {
	p := DefaultPresets()
	for _, name := range p.Names() {
		r, _ := p.Lookup(name)
		// "female-1:4.5-01" is 4.5 heads tall, not counting the neck.
		_, rest, _ := strings.Cut(name, ":")
		heads, _, _ := strings.Cut(rest, "-")
		want, err := strconv.ParseFloat(heads, 64)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got := r.Heads() - r.NeckLength
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: expected %v heads, got %v", name, want, got)
		}
	}
}

func TestParseFraction(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0.65", 0.65},
		{"1/3", 1.0 / 3},
		{"11/3", 11.0 / 3},
		{" 4 / 6 ", 4.0 / 6},
	}
	for _, c := range cases {
		got, err := ParseFraction(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%q: expected %v, got %v", c.in, c.want, got)
		}
	}
	for _, bad := range []string{"", "x", "1/0", "1/y"} {
		if _, err := ParseFraction(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	if _, err := LoadPresets([]byte("- name: short\n  ratios: [1, 2, 3]\n")); !errors.Is(err, ErrRatioCount) {
		t.Errorf("expected ErrRatioCount, got %v", err)
	}
	if _, err := LoadPresets([]byte("- ratios: [1, 1, 1, 1, 1, 0, 0, 1, 1, 1]\n")); err == nil {
		t.Error("expected error for unnamed preset")
	}
	if _, err := LoadPresets([]byte("- name: x\n  ratios: [1, 1, 1, 1, 1, 0, 0, 1, 1, 1/0]\n")); err == nil {
		t.Error("expected error for zero denominator")
	}
}

func TestParseRatios(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	r, err := ParseRatios(in)
	if err != nil {
		t.Fatal(err)
	}
	if r.HeadWidth != 1 || r.LegsLength != 10 || r.FeetSeparation != 6 {
		t.Errorf("fields out of order: %+v", r)
	}
	out := r.Slice()
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("slice mismatch at %d: %v vs %v", i, in, out)
		}
	}
	if _, err := ParseRatios(in[:9]); !errors.Is(err, ErrRatioCount) {
		t.Errorf("expected ErrRatioCount, got %v", err)
	}
}

func preset(t *testing.T, name string) Ratios {
	t.Helper()
	r, err := DefaultPresets().Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFigure(t *testing.T) {
	out := Figure(preset(t, "female-1:2.0-01"), 3).String()

	if !strings.HasPrefix(out, `<svg width="256" height="262.4" viewBox="-128 0 256 262.4"`) {
		t.Errorf("unexpected header: %s", out[:90])
	}
	want := []string{
		`<g id="hbr">`,
		`<ellipse class="secondary" cx="0" cy="64" rx="64" ry="64" />`,
		`<line class="secondary" x1="-64" y1="64" x2="64" y2="64" />`,
		`<line class="secondary" x1="32" y1="48" x2="32" y2="80" />`,
		`<line class="secondary" x1="-32" y1="48" x2="-32" y2="80" />`,
		`<line class="secondary" x1="-38.4" y1="134.4" x2="38.4" y2="134.4" />`,
		`<line class="secondary" x1="38.4" y1="134.4" x2="32" y2="177.067" />`,
		`<line class="secondary" x1="-41.6" y1="219.733" x2="-25.6" y2="262.4" />`,
		`<line class="secondary" x1="0" y1="219.733" x2="0" y2="262.4" />`,
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("missing %s", w)
		}
	}
	if n := strings.Count(out, "<line "); n != 17 {
		t.Errorf("expected 17 lines, got %d", n)
	}
	if strings.Contains(out, `"-0"`) {
		t.Error("negative zero in output")
	}
}

func TestSimple(t *testing.T) {
	out := Simple(preset(t, "female-1:2.0-01"), 3).String()
	if !strings.Contains(out, `<circle class="secondary" cx="0" cy="64" r="64" />`) {
		t.Error("missing head")
	}
	for _, y := range []string{"134.4", "177.067", "219.733", "262.4"} {
		l := `<line class="secondary" x1="-64" y1="` + y + `" x2="64" y2="` + y + `" />`
		if !strings.Contains(out, l) {
			t.Errorf("missing mark at %s", y)
		}
	}
	if n := strings.Count(out, "<line "); n != 4 {
		t.Errorf("expected 4 lines, got %d", n)
	}
}

func TestPrintable(t *testing.T) {
	out := Printable(preset(t, "female-1:2.0-01"), 3).String()
	if !strings.HasPrefix(out, `<svg width="576" height="576" viewBox="0 0 576 576"`) {
		t.Errorf("unexpected header: %s", out[:80])
	}
	for _, y := range []string{"288", "384", "480"} {
		l := `<line class="primary" x1="0" y1="576" x2="576" y2="` + y + `" />`
		if !strings.Contains(out, l) {
			t.Errorf("missing mark at %s", y)
		}
	}
	if !strings.Contains(out, `<line class="secondary" x1="48" y1="528" x2="48" y2="576" />`) {
		t.Error("missing first grid line")
	}
	if n := strings.Count(out, `<line class="secondary"`); n != 11 {
		t.Errorf("expected 11 grid lines, got %d", n)
	}
	if !strings.Contains(out, `<polygon class="primary" points="0,576 576,576 576,0" />`) {
		t.Error("missing frame")
	}
}

func TestRenderUnknownStyle(t *testing.T) {
	_, err := Render(Styles(), "sketchy", Ratios{}, 3)
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestPlan(t *testing.T) {
	jobs, err := Plan(Styles(), DefaultPresets(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 3*17 {
		t.Fatalf("expected 51 jobs, got %d", len(jobs))
	}
	if got := jobs[0].Path(); got != "character/hbr/figure/hbr-female-1:2.0-01.svg" {
		t.Errorf("unexpected path %s", got)
	}
	if jobs[17].Style != "simple" {
		t.Errorf("expected styles outermost, got %s", jobs[17].Style)
	}

	jobs, err = Plan(Styles(), DefaultPresets(), []string{"printable"}, []string{"female-1:7.0-01"})
	if err != nil || len(jobs) != 1 {
		t.Fatalf("expected one job, got %d (%v)", len(jobs), err)
	}
	if _, err := Plan(Styles(), DefaultPresets(), []string{"nope"}, nil); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
	if _, err := Plan(Styles(), DefaultPresets(), nil, []string{"nope"}); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}
