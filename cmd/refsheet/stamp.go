package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/catalog"
	"github.com/san-kum/refsheet/internal/logger"
	"github.com/san-kum/refsheet/internal/stamp"
	"github.com/san-kum/refsheet/internal/viz"
)

var (
	stampDataset   string
	stampTemplates string
)

func newStampCmd() *cobra.Command {
	stampCmd := &cobra.Command{
		Use:   "stamp",
		Short: "label stamps from svg templates",
	}
	stampCmd.PersistentFlags().StringVar(&stampDataset, "dataset", "", "stamp set file (yaml) replacing the built-in sets")

	generateCmd := &cobra.Command{
		Use:   "generate [set...]",
		Short: "expand stamp templates, all sets by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupWriting(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			if len(args) > 0 {
				a.cfg.Stamp.Sets = args
			}
			n, err := a.generateStamps()
			if err != nil {
				return err
			}
			if _, err := a.store.WriteManifest(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d stamps\n", a.styles.Value.Render("wrote"), n)
			return nil
		},
	}
	generateCmd.Flags().StringVar(&stampTemplates, "templates", "", "template root; <root>/<set dir>/.templates/template-<file>.svg")

	setsCmd := &cobra.Command{
		Use:   "sets",
		Short: "list stamp sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			sets, err := a.stampSets()
			if err != nil {
				return err
			}
			var rows []viz.Row
			for _, name := range sets.Names() {
				s, _ := sets.Lookup(name)
				rows = append(rows, viz.Row{
					Name:   name,
					Detail: fmt.Sprintf("%d entries x %d files -> %s", len(s.Dataset), len(s.Files), s.Dir),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.RenderList(a.styles, "stamp sets", rows))
			return nil
		},
	}

	stampCmd.AddCommand(generateCmd, setsCmd)
	return stampCmd
}

func (a *app) stampSets() (*catalog.Catalog[stamp.Set], error) {
	file := a.cfg.Stamp.DatasetFile
	if stampDataset != "" {
		file = stampDataset
	}
	if file == "" {
		return stamp.DefaultSets(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return stamp.LoadSets(data)
}

func (a *app) stampTemplates() fs.FS {
	dir := a.cfg.Stamp.TemplatesDir
	if stampTemplates != "" {
		dir = stampTemplates
	}
	if dir == "" {
		return stamp.DefaultTemplates()
	}
	return os.DirFS(dir)
}

// generateStamps expands the configured sets into the store.
func (a *app) generateStamps() (int, error) {
	sets, err := a.stampSets()
	if err != nil {
		return 0, err
	}
	names := a.cfg.Stamp.Sets
	if len(names) == 0 {
		names = sets.Names()
	}
	defer logger.Timed("stamp.generated", "sets", len(names))()
	fsys := a.stampTemplates()
	total := 0
	for _, name := range names {
		s, err := sets.Lookup(name)
		if err != nil {
			return total, err
		}
		written, err := stamp.Generate(s, fsys, a.store.Write)
		total += len(written)
		if err != nil {
			return total, err
		}
		logger.L().Info("stamp.written", "set", name, "files", len(written))
	}
	return total, nil
}
