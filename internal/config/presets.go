package config

// Presets are ready-made scenarios: initial spacings chosen so merges happen
// at musically useful moments.
var Presets = map[string]*Config{
	"triad": {
		Positions: []float64{0, 300, 900},
		Masses:    []float64{500000, 500000, 500000},
		Ticks:     5, Dt: 20,
		Chord: []uint8{60, 64, 67},
		Tempo: 120,
	},
	"collapse": {
		Positions: []float64{0, 1},
		Masses:    []float64{1000000, 1000000},
		Ticks:     50, Dt: 20,
		Chord: []uint8{48, 55},
		Tempo: 120,
	},
	"spread": {
		Positions: []float64{0, 240, 480, 720, 960},
		Masses:    []float64{800000, 400000, 600000, 400000, 800000},
		Ticks:     200, Dt: 20,
		Chord: []uint8{57, 60, 64},
		Tempo: 96,
	},
	"cluster": {
		Positions: []float64{0, 2, 60, 62, 300},
		Masses:    []float64{900000, 300000, 900000, 300000, 600000},
		Ticks:     120, Dt: 20,
		Chord: []uint8{62, 65, 69, 72},
		Tempo: 140,
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
