package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/bpm"
)

var (
	bpmFPS    int
	bpmFilter string
	bpmFormat string
)

func newBPMCmd() *cobra.Command {
	bpmCmd := &cobra.Command{
		Use:   "bpm",
		Short: "tempos reachable at a frame rate",
	}

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "list tempos and frames per beat",
		RunE:  calcBPM,
	}
	calcCmd.Flags().IntVar(&bpmFPS, "fps", 24, "frames per second")
	calcCmd.Flags().StringVar(&bpmFilter, "filter", "round", "tempo filter")
	calcCmd.Flags().StringVar(&bpmFormat, "format", "human", "output format")

	filtersCmd := &cobra.Command{
		Use:   "filters",
		Short: "list tempo filters",
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range bpm.Filters().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "list output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range bpm.Formats().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}

	bpmCmd.AddCommand(calcCmd, filtersCmd, formatsCmd)
	return bpmCmd
}

func calcBPM(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("fps") {
		bpmFPS = a.cfg.BPM.FPS
	}
	if !flags.Changed("filter") && a.cfg.BPM.Filter != "" {
		bpmFilter = a.cfg.BPM.Filter
	}
	if !flags.Changed("format") && a.cfg.BPM.Format != "" {
		bpmFormat = a.cfg.BPM.Format
	}

	filter, err := bpm.Filters().Lookup(bpmFilter)
	if err != nil {
		return err
	}
	format, err := bpm.Formats().Lookup(bpmFormat)
	if err != nil {
		return err
	}
	results, err := bpm.Calculate(bpmFPS, filter)
	if err != nil {
		return err
	}
	doc, mime, err := format(results)
	if err != nil {
		return err
	}
	ext := "txt"
	if bpmFormat == "csv" {
		ext = "csv"
	}
	rel := path.Join("timing", "bpm", fmt.Sprintf("bpm-%dfps-%s.%s", bpmFPS, bpmFilter, ext))
	return a.emit(cmd, rel, []byte(doc), mime)
}
