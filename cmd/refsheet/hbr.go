package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/catalog"
	"github.com/san-kum/refsheet/internal/generate"
	"github.com/san-kum/refsheet/internal/hbr"
	"github.com/san-kum/refsheet/internal/numfmt"
	"github.com/san-kum/refsheet/internal/output"
	"github.com/san-kum/refsheet/internal/viz"
)

var (
	hbrStyle   string
	hbrRatios  string
	hbrPresets string
)

func newHBRCmd() *cobra.Command {
	hbrCmd := &cobra.Command{
		Use:   "hbr",
		Short: "head-body ratio guides",
	}
	hbrCmd.PersistentFlags().StringVar(&hbrPresets, "presets", "", "preset file (yaml) replacing the built-in presets")

	svgCmd := &cobra.Command{
		Use:   "svg [preset]",
		Short: "render one guide from a preset or from --ratios",
		Args:  cobra.MaximumNArgs(1),
		RunE:  hbrSVG,
	}
	svgCmd.Flags().StringVar(&hbrStyle, "style", "figure", "guide style")
	svgCmd.Flags().StringVar(&hbrRatios, "ratios", "", "10 comma separated ratios, fractions allowed")

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "list guide styles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range hbr.Styles().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			presets, err := a.hbrPresets()
			if err != nil {
				return err
			}
			f := numfmt.New(a.cfg.Precision)
			var rows []viz.Row
			for _, name := range presets.Names() {
				r, _ := presets.Lookup(name)
				rows = append(rows, viz.Row{Name: name, Detail: f.Must(r.Heads()) + " heads"})
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.RenderList(a.styles, "hbr presets", rows))
			return nil
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write every configured guide under the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupWriting(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			jobs, err := a.hbrJobs()
			if err != nil {
				return err
			}
			return a.runBatch(cmd, jobs)
		},
	}

	hbrCmd.AddCommand(svgCmd, stylesCmd, presetsCmd, generateCmd)
	return hbrCmd
}

func (a *app) hbrPresets() (*catalog.Catalog[hbr.Ratios], error) {
	file := a.cfg.HBR.PresetsFile
	if hbrPresets != "" {
		file = hbrPresets
	}
	if file == "" {
		return hbr.DefaultPresets(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return hbr.LoadPresets(data)
}

func parseRatioList(s string) (hbr.Ratios, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := hbr.ParseFraction(p)
		if err != nil {
			return hbr.Ratios{}, err
		}
		vals[i] = v
	}
	return hbr.ParseRatios(vals)
}

func hbrSVG(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	var (
		name   string
		ratios hbr.Ratios
	)
	switch {
	case hbrRatios != "":
		if ratios, err = parseRatioList(hbrRatios); err != nil {
			return err
		}
		name = "custom"
		if len(args) == 1 {
			name = args[0]
		}
	case len(args) == 1:
		presets, err := a.hbrPresets()
		if err != nil {
			return err
		}
		if ratios, err = presets.Lookup(args[0]); err != nil {
			return err
		}
		name = args[0]
	default:
		return fmt.Errorf("need a preset name or --ratios")
	}

	job := hbr.Job{Style: hbrStyle, Preset: name, Ratios: ratios}
	doc, err := hbr.Render(hbr.Styles(), job.Style, ratios, a.cfg.Precision)
	if err != nil {
		return err
	}
	return a.emit(cmd, job.Path(), doc.Bytes(), output.MimeSVG)
}

func (a *app) hbrJobs() ([]generate.Job, error) {
	presets, err := a.hbrPresets()
	if err != nil {
		return nil, err
	}
	styles := hbr.Styles()
	plan, err := hbr.Plan(styles, presets, a.cfg.HBR.Styles, a.cfg.HBR.Presets)
	if err != nil {
		return nil, err
	}
	return generate.HBRJobs(plan, styles, a.cfg.Precision), nil
}
