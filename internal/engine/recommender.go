// internal/engine/recommender.go
package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/common/logger"
	"fitting-engine/internal/common/metrics"
)

// Engine turns a body scan into sized, color-matched product recommendations.
// It is safe for concurrent use: rules are read-only after construction and
// all state lives in the catalog store.
type Engine struct {
	rules  Rules
	store  catalog.Store
	colors catalog.ColorAnalyzer
	logger logger.Logger
}

func New(rules Rules, store catalog.Store, colors catalog.ColorAnalyzer, log logger.Logger) *Engine {
	return &Engine{
		rules:  rules,
		store:  store,
		colors: colors,
		logger: log,
	}
}

// Rules exposes the active decision tables, mainly for diagnostics.
func (e *Engine) Rules() Rules {
	return e.rules
}

// scoredProduct is an intermediate ranking entry.
type scoredProduct struct {
	product catalog.Product
	score   int
}

// GenerateRecommendations runs the full decision pipeline for one scan:
// size and fit classification, color analysis, per-gender-segment product
// scoring, deduplicated global ranking, and recommendation record assembly.
// Records are returned in priority order; the caller persists them.
func (e *Engine) GenerateRecommendations(ctx context.Context, scan catalog.BodyScan) ([]catalog.Recommendation, error) {
	start := time.Now()
	defer func() {
		metrics.EngineDuration.WithLabelValues("generate_recommendations").Observe(time.Since(start).Seconds())
	}()

	sizes, err := e.store.Sizes(ctx)
	if err != nil {
		return nil, err
	}

	norm := e.Normalize(FromScan(scan))

	bodyShape := scan.BodyShape
	if bodyShape == "" {
		bodyShape = "rectangle"
	}
	undertone := scan.Undertone
	if undertone == "" {
		undertone = "warm"
	}

	baseSize := e.MatchSize(norm, sizes)
	fit := e.ClassifyFit(norm)
	colors := e.colors.RecommendedColors(scan.SkinTone, undertone)

	e.logger.Debug("scan decisions computed", map[string]interface{}{
		"scan_id":    scan.ID.String(),
		"base_size":  baseSize,
		"fit":        string(fit),
		"body_shape": bodyShape,
	})

	in := ScoreInput{
		RecommendedSize:   baseSize,
		RecommendedFit:    fit,
		RecommendedColors: colors,
	}

	// Score each gender segment independently, keeping the best of each
	// before merging. Segment order doubles as dedup precedence.
	var merged []scoredProduct
	for _, gender := range e.rules.GenderOrder {
		products, err := e.store.Products(ctx, catalog.ProductFilter{Gender: gender})
		if err != nil {
			return nil, err
		}

		var segment []scoredProduct
		for _, p := range products {
			variants, err := e.store.AvailableVariants(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			score, ok := e.ScoreProduct(p, variants, in)
			if !ok {
				continue
			}
			segment = append(segment, scoredProduct{product: p, score: score})
			metrics.ProductsScored.WithLabelValues(gender).Inc()
		}

		sort.SliceStable(segment, func(i, j int) bool {
			return segment[i].score > segment[j].score
		})
		if len(segment) > e.rules.SegmentLimit {
			segment = segment[:e.rules.SegmentLimit]
		}
		merged = append(merged, segment...)
	}

	// First occurrence wins: a unisex product already ranked in the men
	// segment keeps that entry.
	seen := make(map[uuid.UUID]struct{}, len(merged))
	deduped := merged[:0]
	for _, sp := range merged {
		if _, ok := seen[sp.product.ID]; ok {
			continue
		}
		seen[sp.product.ID] = struct{}{}
		deduped = append(deduped, sp)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].score > deduped[j].score
	})
	if len(deduped) > e.rules.TopN {
		deduped = deduped[:e.rules.TopN]
	}

	colorList := joinColors(colors, e.rules.ColorsToRecord)

	now := time.Now().UTC()
	recs := make([]catalog.Recommendation, 0, len(deduped))
	for _, sp := range deduped {
		size := e.SizeForGarment(norm, sp.product.Category, sizes)
		size = e.AdjustForBodyShape(size, bodyShape, sp.product.Category)

		recs = append(recs, catalog.Recommendation{
			ID:        uuid.New(),
			ScanID:    scan.ID,
			ProductID: sp.product.ID,
			Size:      size,
			Fit:       string(fit),
			Colors:    colorList,
			Priority:  sp.score,
			CreatedAt: now,
		})
		metrics.RecommendationsGenerated.Inc()
	}

	e.logger.Info("recommendations generated", map[string]interface{}{
		"scan_id": scan.ID.String(),
		"count":   len(recs),
	})

	return recs, nil
}

// joinColors joins the first n color names with ", ".
func joinColors(colors []string, n int) string {
	if len(colors) > n {
		colors = colors[:n]
	}
	return strings.Join(colors, ", ")
}
