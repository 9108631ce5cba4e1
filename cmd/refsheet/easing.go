package main

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/numfmt"
	"github.com/san-kum/refsheet/internal/output"
	"github.com/san-kum/refsheet/internal/preview"
	"github.com/san-kum/refsheet/internal/viz"
)

var (
	sampleCount int
	plotWidth   int
	plotHeight  int
	plotBraille bool
	pngSize     int
)

const sparkSamples = 16

func newEasingCmd() *cobra.Command {
	easingCmd := &cobra.Command{
		Use:   "easing",
		Short: "inspect easing curves",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list easing curves",
		RunE:  listEasings,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [name] [t]",
		Short: "evaluate a curve at t in [0, 1]",
		Args:  cobra.ExactArgs(2),
		RunE:  evalEasing,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample [name]",
		Short: "evaluate a curve at evenly spaced frames",
		Args:  cobra.ExactArgs(1),
		RunE:  sampleEasing,
	}
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 5, "number of samples")

	plotCmd := &cobra.Command{
		Use:   "plot [name]",
		Short: "plot a curve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotEasing,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	plotCmd.Flags().BoolVar(&plotBraille, "braille", false, "draw with braille dots")

	previewCmd := &cobra.Command{
		Use:   "preview [name]",
		Short: "render a curve to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  previewEasing,
	}
	previewCmd.Flags().IntVar(&pngSize, "size", 256, "image size in pixels")

	easingCmd.AddCommand(listCmd, evalCmd, sampleCmd, plotCmd, previewCmd)
	return easingCmd
}

func listEasings(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	var rows []viz.Row
	for _, name := range a.reg.Names() {
		f, _ := a.reg.Lookup(name)
		rows = append(rows, viz.Row{
			Name:   name,
			Detail: viz.Sparkline(easing.Samples(f, sparkSamples)) + "  " + f.String(),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.RenderList(a.styles, "easings", rows))
	return nil
}

func evalEasing(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid t %q: %w", args[1], err)
	}
	v, err := a.reg.Evaluate(args[0], t)
	if err != nil {
		return err
	}
	s, err := numfmt.FormatPrec(v, a.cfg.Precision)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func sampleEasing(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	values, err := a.reg.Sample(args[0], sampleCount)
	if err != nil {
		return err
	}
	f := numfmt.New(a.cfg.Precision)
	var sb strings.Builder
	for i, v := range values {
		fmt.Fprintf(&sb, "%d\t%s\t%s\n", i, f.Must(float64(i)/float64(len(values)-1)), f.Must(v))
	}
	fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return nil
}

func plotEasing(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	f, err := a.reg.Lookup(args[0])
	if err != nil {
		return err
	}
	var out string
	if plotBraille {
		out, err = preview.Braille(f, plotWidth/2, plotHeight/2)
	} else {
		out, err = preview.Plot(f, plotWidth, plotHeight, args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func previewEasing(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	f, err := a.reg.Lookup(args[0])
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := preview.PNG(f, pngSize, args[0], &buf); err != nil {
		return err
	}
	rel := path.Join("previews", "easing", args[0]+".png")
	return a.emit(cmd, rel, buf.Bytes(), output.MimePNG)
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [value]",
		Short: "format a number the way generated files do",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			s, err := numfmt.FormatPrec(x, a.cfg.Precision)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
