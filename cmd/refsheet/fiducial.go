package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/fiducial"
	"github.com/san-kum/refsheet/internal/generate"
	"github.com/san-kum/refsheet/internal/output"
)

var (
	fiducialStyle string
	fiducialFrom  int
	fiducialTo    int
)

func newFiducialCmd() *cobra.Command {
	fiducialCmd := &cobra.Command{
		Use:   "fiducial",
		Short: "fiducial markers",
	}
	fiducialCmd.PersistentFlags().StringVar(&fiducialStyle, "style", "xt16bfm", "marker style")

	svgCmd := &cobra.Command{
		Use:   "svg [value]",
		Short: "render one marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			data, err := fiducial.Render(fiducial.Styles(), fiducialStyle, v)
			if err != nil {
				return err
			}
			return a.emit(cmd, fiducial.Path(fiducialStyle, uint16(v)), data, output.MimeSVG)
		},
	}

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "list marker styles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range fiducial.Styles().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}

	canonicalCmd := &cobra.Command{
		Use:   "canonical [value]",
		Short: "print the canonical code of a value, or count all canonical codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), len(fiducial.CanonicalValues()))
				return nil
			}
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 || v > 0xFFFF {
				return fmt.Errorf("%w: %q", fiducial.ErrValue, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), fiducial.Canonicalize(uint16(v)))
			return nil
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write the canonical markers in [--from, --to]",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fiducialFrom < 0 || fiducialTo > 0xFFFF || fiducialFrom > fiducialTo {
				return fmt.Errorf("%w: range %d..%d", fiducial.ErrValue, fiducialFrom, fiducialTo)
			}
			if _, err := fiducial.Styles().Lookup(fiducialStyle); err != nil {
				return err
			}
			a, err := setupWriting(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			var values []uint16
			for _, v := range fiducial.CanonicalValues() {
				if int(v) >= fiducialFrom && int(v) <= fiducialTo {
					values = append(values, v)
				}
			}
			return a.runBatch(cmd, generate.FiducialJobs(fiducial.Styles(), fiducialStyle, values))
		},
	}
	generateCmd.Flags().IntVar(&fiducialFrom, "from", 0, "first value")
	generateCmd.Flags().IntVar(&fiducialTo, "to", 255, "last value")

	fiducialCmd.AddCommand(svgCmd, stylesCmd, canonicalCmd, generateCmd)
	return fiducialCmd
}
