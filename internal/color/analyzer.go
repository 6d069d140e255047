// internal/color/analyzer.go

// Package color maps skin-tone classifications onto ranked clothing color
// palettes. The engine consumes the ranked list as-is.
package color

import (
	"strings"

	"fitting-engine/internal/common/config"
)

// Analyzer resolves color palettes from a tone/undertone lookup table.
// Entries loaded from config extend or override the built-in palettes.
type Analyzer struct {
	tones map[string]map[string][]string
}

// Built-in palettes per skin tone and undertone. The neutral list is the
// fallback for unknown tones or undertones.
var defaultTones = map[string]map[string][]string{
	"very_light": {
		"warm": {"Peach", "Coral", "Warm Beige", "Camel", "Cream", "Gold"},
		"cool": {"Lavender", "Soft Pink", "Ice Blue", "Silver", "Cool Gray", "Mint"},
	},
	"light": {
		"warm": {"Coral", "Salmon", "Honey", "Olive", "Warm Brown", "Mustard"},
		"cool": {"Rose", "Sky Blue", "Emerald", "Plum", "Navy", "Cool Pink"},
	},
	"intermediate": {
		"warm": {"Terracotta", "Rust", "Amber", "Forest Green", "Burnt Orange", "Bronze"},
		"cool": {"Teal", "Magenta", "Royal Blue", "Burgundy", "Charcoal", "Violet"},
	},
	"tan": {
		"warm": {"Burnt Orange", "Copper", "Khaki", "Deep Gold", "Chocolate", "Brick Red"},
		"cool": {"Deep Teal", "Sapphire", "Raspberry", "Slate", "Eggplant", "Jade"},
	},
	"dark": {
		"warm": {"Bright Yellow", "Tangerine", "Scarlet", "Ivory", "Lime", "Cobalt"},
		"cool": {"Fuchsia", "Electric Blue", "Pure White", "Crimson", "Emerald", "Lemon"},
	},
}

var neutralPalette = []string{"Navy", "White", "Black", "Gray", "Denim Blue"}

// New builds an Analyzer from the palette config. Config tones override
// built-in tones entry by entry; tones absent from the config keep their
// defaults.
func New(cfg config.PaletteConfig) *Analyzer {
	tones := make(map[string]map[string][]string, len(defaultTones))
	for tone, undertones := range defaultTones {
		tones[tone] = undertones
	}
	for tone, undertones := range cfg.Tones {
		tones[strings.ToLower(tone)] = undertones
	}
	return &Analyzer{tones: tones}
}

// RecommendedColors returns the ranked palette for a skin tone and undertone,
// most recommended first. Unknown tones or undertones get the neutral
// palette. Callers must not mutate the returned slice.
func (a *Analyzer) RecommendedColors(skinTone, undertone string) []string {
	undertones, ok := a.tones[strings.ToLower(skinTone)]
	if !ok {
		return neutralPalette
	}
	palette, ok := undertones[strings.ToLower(undertone)]
	if !ok {
		return neutralPalette
	}
	return palette
}
