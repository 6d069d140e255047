// internal/engine/scorer.go
package engine

import "fitting-engine/internal/catalog"

// ScoreInput carries the per-scan decisions a product is scored against.
type ScoreInput struct {
	RecommendedSize   string
	RecommendedFit    FitType
	RecommendedColors []string
}

// ScoreProduct computes the additive relevance score for a product given its
// available variants. The second return is false when the product has no
// available variants and must be excluded from ranking entirely.
func (e *Engine) ScoreProduct(product catalog.Product, variants []catalog.Variant, in ScoreInput) (int, bool) {
	if len(variants) == 0 {
		return 0, false
	}

	score := e.rules.BaseBonus

	if product.FitType == string(in.RecommendedFit) {
		score += e.rules.FitBonus
	}

	sizeInStock := false
	colorMatch := false
	for _, v := range variants {
		if v.Size == in.RecommendedSize {
			sizeInStock = true
		}
		for _, c := range in.RecommendedColors {
			if v.Color.Name == c {
				colorMatch = true
				break
			}
		}
	}
	if sizeInStock {
		score += e.rules.SizeBonus
	}
	if colorMatch {
		score += e.rules.ColorBonus
	}

	return score, true
}
