package config

import "math"

var Presets = map[string]*Config{
	"glide": {
		Zt: 64.0, Z0: 16.0, Theta0: 0.0,
	},
	"dive": {
		Zt: 64.0, Z0: 16.0, Theta0: -math.Pi / 2,
	},
	"loops": {
		Zt: 16.0, Z0: 48.0, Theta0: 0.0,
	},
	"shallow": {
		Zt: 1.0, Z0: 1.3, Theta0: 0.0,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
