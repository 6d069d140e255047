// internal/engine/sizing.go
package engine

import (
	"sort"

	"fitting-engine/internal/catalog"
)

// MatchSize maps normalized chest/waist circumferences onto a size-chart
// label. Ranges satisfied by both bounds win first, in chart order; otherwise
// the closest size by chest decides. An empty chart returns the default size.
func (e *Engine) MatchSize(m Measurements, sizes []catalog.SizeRange) string {
	chest := m.Get(DimChest)
	waist := m.Get(DimWaist)

	// Exact match on both bounds, first satisfying range wins. Charts are
	// non-overlapping by convention, but overlaps stay deterministic.
	for _, s := range sizes {
		if chest >= s.ChestMin && chest <= s.ChestMax &&
			waist >= s.WaistMin && waist <= s.WaistMax {
			return s.Name
		}
	}

	if len(sizes) == 0 {
		return e.rules.DefaultSize
	}

	// Closest match by chest only.
	ordered := make([]catalog.SizeRange, len(sizes))
	copy(ordered, sizes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ChestMin < ordered[j].ChestMin
	})

	if chest < ordered[0].ChestMin {
		return ordered[0].Name
	}
	if chest > ordered[len(ordered)-1].ChestMax {
		return ordered[len(ordered)-1].Name
	}
	for _, s := range ordered {
		if chest >= s.ChestMin && chest <= s.ChestMax {
			return s.Name
		}
	}

	return e.rules.DefaultSize
}

// SizeForGarment sizes by the garment profile's fit-focus dimension alone,
// falling back to the generic match when no range covers the focus value.
// Measurements must already be normalized.
func (e *Engine) SizeForGarment(m Measurements, garmentType string, sizes []catalog.SizeRange) string {
	profile := ProfileFor(garmentType)
	focus := m.Get(profile.FitFocus)

	for _, s := range sizes {
		var lo, hi float64
		switch profile.FitFocus {
		case DimWaist:
			lo, hi = s.WaistMin, s.WaistMax
		default:
			// Chest bounds cover chest-like focuses and anything else.
			lo, hi = s.ChestMin, s.ChestMax
		}
		if focus >= lo && focus <= hi {
			return s.Name
		}
	}

	return e.MatchSize(m, sizes)
}

// GarmentSize is SizeForGarment with the body-shape adjustment applied.
func (e *Engine) GarmentSize(m Measurements, garmentType, bodyShape string, sizes []catalog.SizeRange) string {
	base := e.SizeForGarment(m, garmentType, sizes)
	return e.AdjustForBodyShape(base, bodyShape, garmentType)
}
