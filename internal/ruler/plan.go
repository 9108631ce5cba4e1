package ruler

import (
	"fmt"
	"path"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/svgdoc"
)

// Kind selects a ruler layout.
type Kind string

const (
	KindStraight Kind = "straight-simple"
	KindTriangle Kind = "straight-triangle"
	KindRadial   Kind = "radial"
	KindGraph    Kind = "functions"
)

// Kinds lists every layout in generation order.
func Kinds() []Kind {
	return []Kind{KindStraight, KindTriangle, KindRadial, KindGraph}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %v)", ErrKind, s, Kinds())
}

const baseDir = "rulers/inbetweening"

// Job is a single ruler file to produce.
type Job struct {
	Kind    Kind
	Easing  easing.Named
	Frames  int
	Degrees int
}

// Path is the slash separated output path relative to the output root.
func (j Job) Path() string {
	e := j.Easing.Name
	switch j.Kind {
	case KindRadial:
		return path.Join(baseDir, string(j.Kind), e, fmt.Sprintf("%ddeg", j.Degrees),
			fmt.Sprintf("ruler-inbetweening-radial-%s-%ddeg-%df.svg", e, j.Degrees, j.Frames))
	case KindGraph:
		return path.Join(baseDir, string(j.Kind), e+".svg")
	default:
		return path.Join(baseDir, string(j.Kind), e,
			fmt.Sprintf("ruler-inbetweening-%s-%s-%df.svg", j.Kind, e, j.Frames))
	}
}

func (j Job) Render(g Geometry) (*svgdoc.Document, error) {
	f := j.Easing.Func
	switch j.Kind {
	case KindStraight:
		return Straight(g, f, j.Frames)
	case KindTriangle:
		return Triangle(g, f, j.Frames)
	case KindRadial:
		return Radial(g, f, float64(j.Degrees), j.Frames)
	case KindGraph:
		return Graph(g, f), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrKind, j.Kind)
	}
}

// PlanConfig selects what Plan enumerates.
type PlanConfig struct {
	Easings   []easing.Named
	FramesMin int
	FramesMax int
	Degrees   []int
	Kinds     []Kind
}

// Plan enumerates jobs grouped by layout, then easing, then angle, then
// frame count. Graphs are produced once per easing.
func Plan(cfg PlanConfig) ([]Job, error) {
	if cfg.FramesMin < 2 || cfg.FramesMax < cfg.FramesMin {
		return nil, fmt.Errorf("%w: range %d..%d", ErrFrames, cfg.FramesMin, cfg.FramesMax)
	}
	for _, deg := range cfg.Degrees {
		if deg <= 0 || deg > 360 {
			return nil, fmt.Errorf("%w: got %d", ErrDegrees, deg)
		}
	}
	kinds := cfg.Kinds
	if len(kinds) == 0 {
		kinds = Kinds()
	}

	var jobs []Job
	for _, k := range kinds {
		for _, e := range cfg.Easings {
			switch k {
			case KindGraph:
				jobs = append(jobs, Job{Kind: k, Easing: e})
			case KindRadial:
				for _, deg := range cfg.Degrees {
					for n := cfg.FramesMin; n <= cfg.FramesMax; n++ {
						jobs = append(jobs, Job{Kind: k, Easing: e, Frames: n, Degrees: deg})
					}
				}
			case KindStraight, KindTriangle:
				for n := cfg.FramesMin; n <= cfg.FramesMax; n++ {
					jobs = append(jobs, Job{Kind: k, Easing: e, Frames: n})
				}
			default:
				return nil, fmt.Errorf("%w: %q", ErrKind, k)
			}
		}
	}
	return jobs, nil
}
