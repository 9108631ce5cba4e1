package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/output"
	"github.com/san-kum/refsheet/internal/viz"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "write all rulers, guides and stamps under the output directory",
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
			hbrJobs, err := a.hbrJobs()
			if err != nil {
				return err
			}
			if _, err := a.generateStamps(); err != nil {
				return err
			}
			return a.runBatch(cmd, append(jobs, hbrJobs...))
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "check generated files against the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			m, err := a.store.ReadManifest()
			if err != nil {
				return fmt.Errorf("no manifest in %s: %w", a.cfg.OutputDir, err)
			}
			stale, err := a.store.Verify(m)
			if err != nil {
				return err
			}
			var rows []viz.Row
			for _, p := range stale {
				rows = append(rows, viz.Row{Name: p, Detail: "changed or missing"})
			}
			if len(rows) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), viz.RenderList(a.styles, "stale files", rows))
				return fmt.Errorf("%d of %d files differ from %s", len(stale), len(m.Files), output.ManifestPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files match %s\n", len(m.Files), output.ManifestPath)
			return nil
		},
	}
}
