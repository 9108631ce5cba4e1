package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/ruler"
)

const (
	DefaultOutputDir = "."
	DefaultFramesMin = 4
	DefaultFramesMax = 10
	DefaultWorkers   = 4
	DefaultFPS       = 24
)

var DefaultDegrees = []int{90, 120, 180, 240, 270, 360}

type Config struct {
	OutputDir string       `yaml:"output_dir"`
	Precision int          `yaml:"precision"`
	Workers   int          `yaml:"workers"`
	Target    string       `yaml:"target"`
	Ruler     RulerConfig  `yaml:"ruler"`
	Easing    EasingConfig `yaml:"easing"`
	HBR       HBRConfig    `yaml:"hbr"`
	Stamp     StampConfig  `yaml:"stamp"`
	BPM       BPMConfig    `yaml:"bpm"`
}

type RulerConfig struct {
	Geometry  ruler.Geometry `yaml:"geometry"`
	FramesMin int            `yaml:"frames_min"`
	FramesMax int            `yaml:"frames_max"`
	Degrees   []int          `yaml:"degrees"`
	Kinds     []string       `yaml:"kinds"`
}

type EasingConfig struct {
	Names           []string `yaml:"names"`
	SpringFrequency float64  `yaml:"spring_frequency"`
	SpringDamping   float64  `yaml:"spring_damping"`
}

type HBRConfig struct {
	Styles      []string `yaml:"styles"`
	Presets     []string `yaml:"presets"`
	PresetsFile string   `yaml:"presets_file"`
}

type StampConfig struct {
	Sets         []string `yaml:"sets"`
	DatasetFile  string   `yaml:"dataset_file"`
	TemplatesDir string   `yaml:"templates_dir"`
}

type BPMConfig struct {
	FPS    int    `yaml:"fps"`
	Filter string `yaml:"filter"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	geo := ruler.DefaultGeometry()
	return &Config{
		OutputDir: DefaultOutputDir,
		Precision: geo.Precision,
		Workers:   DefaultWorkers,
		Target:    "stdout",
		Ruler: RulerConfig{
			Geometry:  geo,
			FramesMin: DefaultFramesMin,
			FramesMax: DefaultFramesMax,
			Degrees:   append([]int(nil), DefaultDegrees...),
		},
		Easing: EasingConfig{
			SpringFrequency: easing.DefaultSpringFrequency,
			SpringDamping:   easing.DefaultSpringDamping,
		},
		BPM: BPMConfig{
			FPS:    DefaultFPS,
			Filter: "round",
			Format: "human",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes the file at path over cfg. Keys missing from the file
// keep their current values.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values that are not checked by the generators
// themselves.
func (c *Config) Validate() error {
	switch {
	case c.Precision < 0:
		return fmt.Errorf("config: precision must not be negative")
	case c.Workers < 1:
		return fmt.Errorf("config: workers must be at least 1")
	case c.Ruler.FramesMin < 2 || c.Ruler.FramesMax < c.Ruler.FramesMin:
		return fmt.Errorf("config: need 2 <= frames_min <= frames_max, got %d..%d",
			c.Ruler.FramesMin, c.Ruler.FramesMax)
	case c.BPM.FPS <= 0:
		return fmt.Errorf("config: fps must be positive")
	}
	return c.GeometryWithPrecision().Validate()
}

// GeometryWithPrecision is the ruler geometry with the global precision
// applied.
func (c *Config) GeometryWithPrecision() ruler.Geometry {
	g := c.Ruler.Geometry
	g.Precision = c.Precision
	return g
}

func (c *Config) EasingOptions() easing.Options {
	return easing.Options{
		SpringFrequency: c.Easing.SpringFrequency,
		SpringDamping:   c.Easing.SpringDamping,
	}
}

// RulerKinds parses the configured kinds. Empty means every kind.
func (c *Config) RulerKinds() ([]ruler.Kind, error) {
	kinds := make([]ruler.Kind, 0, len(c.Ruler.Kinds))
	for _, s := range c.Ruler.Kinds {
		k, err := ruler.ParseKind(s)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
