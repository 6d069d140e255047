// internal/engine/matcher.go
package engine

import (
	"context"
	"fmt"
	"sort"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/common/metrics"
)

// MatchResult pairs a product with the concrete variant that fits the scan.
type MatchResult struct {
	Product          catalog.Product `json:"product"`
	Variant          catalog.Variant `json:"variant"`
	RecommendedSize  string          `json:"recommended_size"`
	RecommendedColor string          `json:"recommended_color"`
	ColorHex         string          `json:"color_hex"`
	RecommendedFit   FitType         `json:"recommended_fit"`

	// IsPerfectMatch means both size and color matched; a size-only match
	// leaves it false.
	IsPerfectMatch bool `json:"is_perfect_match"`

	// FitMatchesRecommendation means the product's fit type equals the
	// fit classified from the scan.
	FitMatchesRecommendation bool `json:"fit_matches_recommendation"`

	Message string `json:"message"`
}

// MatchOptions narrows and bounds a variant matching pass. A zero Limit uses
// the configured default.
type MatchOptions struct {
	Gender  string
	FitType string
	Limit   int
}

// MatchVariants finds in-stock variants matching the scan's size decision,
// preferring variants that also carry a recommended color. Results order:
// fit-matching products first, then perfect (size+color) matches, then
// alphabetically by product name; ties keep store order.
func (e *Engine) MatchVariants(ctx context.Context, m Measurements, bodyShape, skinTone, undertone string, opts MatchOptions) ([]MatchResult, error) {
	sizes, err := e.store.Sizes(ctx)
	if err != nil {
		return nil, err
	}

	if undertone == "" {
		undertone = "warm"
	}

	norm := e.Normalize(m)
	fit := e.ClassifyFit(norm)
	colors := e.colors.RecommendedColors(skinTone, undertone)

	products, err := e.store.Products(ctx, catalog.ProductFilter{
		Gender:  opts.Gender,
		FitType: opts.FitType,
	})
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = e.rules.MatchLimit
	}

	var results []MatchResult
	for _, p := range products {
		variants, err := e.store.AvailableVariants(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if len(variants) == 0 {
			continue
		}

		size := e.GarmentSize(norm, p.Category, bodyShape, sizes)

		match, ok := pickVariant(variants, size, colors)
		if !ok {
			continue
		}

		r := MatchResult{
			Product:                  p,
			Variant:                  match,
			RecommendedSize:          size,
			RecommendedColor:         match.Color.Name,
			ColorHex:                 match.Color.Hex,
			RecommendedFit:           fit,
			IsPerfectMatch:           colorIn(colors, match.Color.Name),
			FitMatchesRecommendation: p.FitType == string(fit),
		}
		if r.IsPerfectMatch {
			r.Message = fmt.Sprintf("This %s in size %s with %s will fit you perfectly!", p.Category, size, match.Color.Name)
			metrics.VariantMatches.WithLabelValues("perfect").Inc()
		} else {
			r.Message = fmt.Sprintf("This %s in size %s will fit you great!", p.Category, size)
			metrics.VariantMatches.WithLabelValues("size_only").Inc()
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.FitMatchesRecommendation != b.FitMatchesRecommendation {
			return a.FitMatchesRecommendation
		}
		if a.IsPerfectMatch != b.IsPerfectMatch {
			return a.IsPerfectMatch
		}
		return a.Product.Name < b.Product.Name
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// pickVariant selects the first variant in the recommended size that carries
// a recommended color, falling back to the first variant in size alone.
// Variants are assumed in stable store order.
func pickVariant(variants []catalog.Variant, size string, colors []string) (catalog.Variant, bool) {
	var sizeOnly *catalog.Variant
	for i := range variants {
		v := &variants[i]
		if v.Size != size {
			continue
		}
		if colorIn(colors, v.Color.Name) {
			return *v, true
		}
		if sizeOnly == nil {
			sizeOnly = v
		}
	}
	if sizeOnly != nil {
		return *sizeOnly, true
	}
	return catalog.Variant{}, false
}

func colorIn(colors []string, name string) bool {
	for _, c := range colors {
		if c == name {
			return true
		}
	}
	return false
}
