package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/refsheet/internal/config"
	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/logger"
	"github.com/san-kum/refsheet/internal/output"
	"github.com/san-kum/refsheet/internal/viz"
)

var (
	outDir     string
	configFile string
	preset     string
	targetName string
	precision  int
	workers    int
	debug      bool
	themeName  string
)

// main builds the command tree and exits with status 1 when a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "refsheet",
		Short:        "generate animation reference sheets",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named config preset")
	pf.StringVar(&targetName, "target", "stdout", "where single documents go: stdout, clipboard, file")
	pf.IntVar(&precision, "precision", 3, "decimal places in generated coordinates")
	pf.IntVar(&workers, "workers", config.DefaultWorkers, "parallel renders for batch commands")
	pf.BoolVar(&debug, "debug", false, "debug logging")
	pf.StringVar(&themeName, "theme", "neon", "terminal color theme")

	rootCmd.AddCommand(
		newEasingCmd(),
		newFormatCmd(),
		newRulerCmd(),
		newFiducialCmd(),
		newBPMCmd(),
		newHBRCmd(),
		newStampCmd(),
		newGenerateCmd(),
		newVerifyCmd(),
		newBrowseCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// app is what a command needs once flags and config are resolved.
type app struct {
	cfg     *config.Config
	reg     *easing.Registry
	store   *output.Store
	styles  viz.Styles
	cleanup func() error
}

// loadConfig resolves preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir = outDir
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("target") {
		cfg.Target = targetName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	reg := easing.NewRegistry(cfg.EasingOptions())
	if len(cfg.Easing.Names) > 0 {
		if _, err := reg.Select(cfg.Easing.Names); err != nil {
			return nil, err
		}
	}

	a := &app{
		cfg:     cfg,
		reg:     reg,
		store:   output.New(cfg.OutputDir),
		styles:  viz.NewStyles(viz.GetTheme(themeName)),
		cleanup: func() error { return nil },
	}
	return a, nil
}

// setupWriting additionally prepares the output directory and the log file.
func setupWriting(cmd *cobra.Command) (*app, error) {
	a, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	if err := a.store.Init(); err != nil {
		return nil, err
	}
	cleanup, err := logger.Setup(logger.Config{Root: a.cfg.OutputDir, Debug: debug})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	a.cleanup = cleanup
	logger.L().Debug("command.start", "command", cmd.CommandPath(), "out", a.cfg.OutputDir)
	return a, nil
}

func (a *app) close() {
	_ = a.cleanup()
}

// emit sends one document to the configured target. rel is used when the
// target is a file.
func (a *app) emit(cmd *cobra.Command, rel string, data []byte, mime string) error {
	targets := output.Targets(output.Env{
		Stdout:    cmd.OutOrStdout(),
		Clipboard: output.SystemClipboard(),
		Store:     a.store,
	})
	t, err := targets.Lookup(a.cfg.Target)
	if err != nil {
		return err
	}
	if a.cfg.Target == "file" {
		if err := a.store.Init(); err != nil {
			return err
		}
	}
	if err := t.Emit(rel, data, mime); err != nil {
		return err
	}
	if a.cfg.Target == "file" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", rel)
	}
	return nil
}
