// internal/engine/fit.go
package engine

// FitType is the recommended garment fit.
type FitType string

const (
	FitSlim     FitType = "slim"
	FitRegular  FitType = "regular"
	FitOversize FitType = "oversize"
)

// ClassifyFit maps the chest/waist ratio onto a fit category. A zero waist
// leaves the ratio undefined and defaults to regular. The ratio is scale
// invariant, so raw and normalized measurements classify identically.
func (e *Engine) ClassifyFit(m Measurements) FitType {
	chest := m.Get(DimChest)
	waist := m.Get(DimWaist)

	if waist == 0 {
		return FitRegular
	}

	ratio := chest / waist

	switch {
	case ratio >= e.rules.SlimMinRatio:
		return FitSlim
	case ratio >= e.rules.RegularMinRatio:
		return FitRegular
	default:
		return FitOversize
	}
}
