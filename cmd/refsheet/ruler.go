package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/generate"
	"github.com/san-kum/refsheet/internal/logger"
	"github.com/san-kum/refsheet/internal/output"
	"github.com/san-kum/refsheet/internal/ruler"
	"github.com/san-kum/refsheet/internal/viz"
)

var (
	rulerFrames  int
	rulerDegrees int
)

const progressWidth = 30

func newRulerCmd() *cobra.Command {
	rulerCmd := &cobra.Command{
		Use:   "ruler",
		Short: "inbetweening rulers",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write every configured ruler under the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupWriting(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			jobs, err := a.rulerJobs()
			if err != nil {
				return err
			}
			return a.runBatch(cmd, jobs)
		},
	}

	svgCmd := &cobra.Command{
		Use:   "svg [kind] [easing]",
		Short: "render a single ruler",
		Args:  cobra.ExactArgs(2),
		RunE:  rulerSVG,
	}
	svgCmd.Flags().IntVar(&rulerFrames, "frames", 5, "frame count")
	svgCmd.Flags().IntVar(&rulerDegrees, "degrees", 180, "fan angle (radial)")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list ruler layouts",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range ruler.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}

	rulerCmd.AddCommand(generateCmd, svgCmd, kindsCmd)
	return rulerCmd
}

func rulerSVG(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	kind, err := ruler.ParseKind(args[0])
	if err != nil {
		return err
	}
	f, err := a.reg.Lookup(args[1])
	if err != nil {
		return err
	}
	job := ruler.Job{
		Kind:    kind,
		Easing:  easing.Named{Name: args[1], Func: f},
		Frames:  rulerFrames,
		Degrees: rulerDegrees,
	}
	doc, err := job.Render(a.cfg.GeometryWithPrecision())
	if err != nil {
		return err
	}
	return a.emit(cmd, job.Path(), doc.Bytes(), output.MimeSVG)
}

func (a *app) rulerJobs() ([]generate.Job, error) {
	sel, err := a.reg.Select(a.cfg.Easing.Names)
	if err != nil {
		return nil, err
	}
	kinds, err := a.cfg.RulerKinds()
	if err != nil {
		return nil, err
	}
	plan, err := ruler.Plan(ruler.PlanConfig{
		Easings:   sel,
		FramesMin: a.cfg.Ruler.FramesMin,
		FramesMax: a.cfg.Ruler.FramesMax,
		Degrees:   a.cfg.Ruler.Degrees,
		Kinds:     kinds,
	})
	if err != nil {
		return nil, err
	}
	logger.L().Info("ruler.planned", "jobs", len(plan), "easings", len(sel))
	return generate.RulerJobs(plan, a.cfg.GeometryWithPrecision()), nil
}

// runBatch renders jobs into the store and refreshes the manifest.
func (a *app) runBatch(cmd *cobra.Command, jobs []generate.Job) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		mu   sync.Mutex
		done int
	)
	stderr := cmd.ErrOrStderr()
	r := &generate.Runner{
		Out:     a.store,
		Workers: a.cfg.Workers,
		Progress: func(string) {
			mu.Lock()
			defer mu.Unlock()
			done++
			fmt.Fprintf(stderr, "\r%s %d/%d", viz.ProgressBar(done, len(jobs), progressWidth), done, len(jobs))
		},
	}
	rep, err := r.Run(ctx, jobs)
	if len(jobs) > 0 {
		fmt.Fprintln(stderr)
	}
	if err != nil {
		return err
	}
	m, err := a.store.WriteManifest()
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d files in %s (%d in manifest)\n",
		a.styles.Value.Render("wrote"), len(rep.Files), rep.Elapsed.Round(time.Millisecond), len(m.Files))
	if debug && logger.IsReady() == nil {
		fmt.Fprintf(stderr, "log: %s\n", logger.Path())
	}
	return nil
}
