package config

import "sort"

// Presets are named starting points for a config file.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {
		c.Easing.Names = []string{"linear", "smoothstep", "ease-in", "ease-out", "ease-in-out"}
	},
	"draft": func(c *Config) {
		c.Precision = 2
		c.Ruler.FramesMax = 6
		c.Ruler.Degrees = []int{180}
		c.Easing.Names = []string{"linear", "ease-in-out"}
		c.HBR.Styles = []string{"simple"}
	},
	"full": func(c *Config) {},
	"print": func(c *Config) {
		c.Ruler.Kinds = []string{"straight-simple", "straight-triangle"}
		c.HBR.Styles = []string{"printable"}
		c.Stamp.Sets = []string{"large-jp"}
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil if there is no such preset.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
