// Package generate renders batches of assets in parallel and writes them
// through an output store.
package generate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/refsheet/internal/catalog"
	"github.com/san-kum/refsheet/internal/fiducial"
	"github.com/san-kum/refsheet/internal/hbr"
	"github.com/san-kum/refsheet/internal/logger"
	"github.com/san-kum/refsheet/internal/ruler"
)

// Job renders one file.
type Job struct {
	Path   string
	Render func() ([]byte, error)
}

// Writer is the subset of output.Store the runner needs.
type Writer interface {
	Write(rel string, data []byte) error
}

type Runner struct {
	Out     Writer
	Workers int
	// Progress, if set, is called after each file is written. It may be
	// called from several goroutines.
	Progress func(path string)
}

type Report struct {
	Files   []string
	Elapsed time.Duration
}

// Run renders and writes every job, at most Workers at a time. The first
// error cancels the remaining jobs.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*Report, error) {
	start := time.Now()
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	parent := ctx
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)

	done := make([]bool, len(jobs))
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := job.Render()
			if err != nil {
				return fmt.Errorf("render %s: %w", job.Path, err)
			}
			if err := r.Out.Write(job.Path, data); err != nil {
				return fmt.Errorf("write %s: %w", job.Path, err)
			}
			done[i] = true
			logger.L().Debug("asset.written", "path", job.Path, "bytes", len(data))
			if r.Progress != nil {
				r.Progress(job.Path)
			}
			return nil
		})
	}
	err := g.Wait()

	rep := &Report{Elapsed: time.Since(start)}
	for i, ok := range done {
		if ok {
			rep.Files = append(rep.Files, jobs[i].Path)
		}
	}
	sort.Strings(rep.Files)
	if err == nil && len(rep.Files) < len(jobs) {
		// jobs skipped after a cancellation never report it themselves
		err = parent.Err()
	}

	if err != nil {
		logger.L().Error("batch.failed", "written", len(rep.Files), "jobs", len(jobs), "err", err)
		return rep, err
	}
	logger.L().Info("batch.finished", "written", len(rep.Files), "workers", workers, "elapsed", rep.Elapsed)
	return rep, nil
}

// RulerJobs wraps a ruler plan.
func RulerJobs(plan []ruler.Job, g ruler.Geometry) []Job {
	jobs := make([]Job, len(plan))
	for i, j := range plan {
		jobs[i] = Job{
			Path: j.Path(),
			Render: func() ([]byte, error) {
				d, err := j.Render(g)
				if err != nil {
					return nil, err
				}
				return d.Bytes(), nil
			},
		}
	}
	return jobs
}

// HBRJobs wraps a head-body ratio plan.
func HBRJobs(plan []hbr.Job, styles *catalog.Catalog[hbr.Guide], prec int) []Job {
	jobs := make([]Job, len(plan))
	for i, j := range plan {
		jobs[i] = Job{
			Path: j.Path(),
			Render: func() ([]byte, error) {
				d, err := hbr.Render(styles, j.Style, j.Ratios, prec)
				if err != nil {
					return nil, err
				}
				return d.Bytes(), nil
			},
		}
	}
	return jobs
}

// FiducialJobs renders one marker per value.
func FiducialJobs(styles *catalog.Catalog[fiducial.Renderer], style string, values []uint16) []Job {
	jobs := make([]Job, len(values))
	for i, v := range values {
		jobs[i] = Job{
			Path: fiducial.Path(style, v),
			Render: func() ([]byte, error) {
				return fiducial.Render(styles, style, int(v))
			},
		}
	}
	return jobs
}
