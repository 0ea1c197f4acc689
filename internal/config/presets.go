package config

// Presets are named lamp characters. Values outside a parameter's
// runtime range are clamped when applied.
var Presets = map[string]*Config{
	"candle": {
		Leds: DefaultLeds, FPS: DefaultFPS,
		Brightness: 12, Sparking: 60, Cooling: 90,
	},
	"bonfire": {
		Leds: DefaultLeds, FPS: DefaultFPS,
		Brightness: 48, Sparking: 190, Cooling: 30,
	},
	"ember": {
		Leds: DefaultLeds, FPS: 30,
		Brightness: 8, Sparking: 50, Cooling: 100,
	},
	"torch": {
		Leds: DefaultLeds, FPS: DefaultFPS,
		Brightness: 32, Sparking: 150, Cooling: 45,
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
