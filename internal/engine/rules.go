// internal/engine/rules.go
package engine

import "fitting-engine/internal/common/config"

// Rules holds the static decision tables, loaded once at process start.
// Defaults mirror the production tuning; config overrides individual fields.
type Rules struct {
	WidthToCircumference float64
	DefaultSize          string

	// Chest/waist ratio bands, compared descending. Oversize is the catch-all
	// below RegularMinRatio.
	SlimMinRatio    float64
	RegularMinRatio float64

	// Canonical size scale used for body-shape index arithmetic only.
	SizeScale []string

	// Gender segment iteration order; also the dedup precedence contract.
	GenderOrder []string

	// body_shape -> garment_type -> step on SizeScale
	// (negative = size down, positive = size up)
	ShapeAdjustments map[string]map[string]int

	FitBonus   int
	SizeBonus  int
	ColorBonus int
	BaseBonus  int

	SegmentLimit   int
	TopN           int
	MatchLimit     int
	ColorsToRecord int
}

func DefaultRules() Rules {
	return Rules{
		WidthToCircumference: 2.0,
		DefaultSize:          "M",
		SlimMinRatio:         1.4,
		RegularMinRatio:      1.15,
		SizeScale:            []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"},
		GenderOrder:          []string{"men", "women", "unisex"},
		ShapeAdjustments: map[string]map[string]int{
			"inverted_triangle": {"shirt": 1, "jacket": 1, "pants": -1, "dress": 0, "skirt": -1},
			"triangle":          {"shirt": -1, "jacket": 0, "pants": 1, "dress": 0, "skirt": 1},
			"oval":              {"shirt": 1, "jacket": 1, "pants": 1, "dress": 1, "skirt": 1},
			"hourglass":         {"shirt": 0, "jacket": 0, "pants": 0, "dress": -1, "skirt": 0},
			"rectangle":         {"shirt": 0, "jacket": 0, "pants": 0, "dress": 0, "skirt": 0},
		},
		FitBonus:       15,
		SizeBonus:      10,
		ColorBonus:     10,
		BaseBonus:      5,
		SegmentLimit:   10,
		TopN:           10,
		MatchLimit:     6,
		ColorsToRecord: 5,
	}
}

// RulesFromConfig overlays non-zero config fields onto the defaults.
func RulesFromConfig(cfg config.EngineConfig) Rules {
	r := DefaultRules()

	if cfg.WidthToCircumference > 0 {
		r.WidthToCircumference = cfg.WidthToCircumference
	}
	if cfg.DefaultSize != "" {
		r.DefaultSize = cfg.DefaultSize
	}
	if cfg.SlimMinRatio > 0 {
		r.SlimMinRatio = cfg.SlimMinRatio
	}
	if cfg.RegularMinRatio > 0 {
		r.RegularMinRatio = cfg.RegularMinRatio
	}
	if len(cfg.SizeScale) > 0 {
		r.SizeScale = cfg.SizeScale
	}
	if len(cfg.GenderOrder) > 0 {
		r.GenderOrder = cfg.GenderOrder
	}
	if len(cfg.ShapeAdjustments) > 0 {
		r.ShapeAdjustments = cfg.ShapeAdjustments
	}
	if cfg.FitBonus > 0 {
		r.FitBonus = cfg.FitBonus
	}
	if cfg.SizeBonus > 0 {
		r.SizeBonus = cfg.SizeBonus
	}
	if cfg.ColorBonus > 0 {
		r.ColorBonus = cfg.ColorBonus
	}
	if cfg.BaseBonus > 0 {
		r.BaseBonus = cfg.BaseBonus
	}
	if cfg.SegmentLimit > 0 {
		r.SegmentLimit = cfg.SegmentLimit
	}
	if cfg.TopN > 0 {
		r.TopN = cfg.TopN
	}
	if cfg.MatchLimit > 0 {
		r.MatchLimit = cfg.MatchLimit
	}
	if cfg.ColorsToRecord > 0 {
		r.ColorsToRecord = cfg.ColorsToRecord
	}

	return r
}
