// internal/engine/adjust.go
package engine

import "strings"

// AdjustForBodyShape shifts a size label along the size scale according to
// the body-shape adjustment table. Unknown shapes, unknown garment types and
// labels outside the scale pass through unchanged; shifts clamp at the scale
// ends.
func (e *Engine) AdjustForBodyShape(size, bodyShape, garmentType string) string {
	shape, ok := e.rules.ShapeAdjustments[strings.ToLower(bodyShape)]
	if !ok {
		return size
	}
	step, ok := shape[strings.ToLower(garmentType)]
	if !ok || step == 0 {
		return size
	}

	idx := -1
	upper := strings.ToUpper(size)
	for i, s := range e.rules.SizeScale {
		if s == upper {
			idx = i
			break
		}
	}
	if idx < 0 {
		return size
	}

	idx += step
	if idx < 0 {
		idx = 0
	}
	if idx >= len(e.rules.SizeScale) {
		idx = len(e.rules.SizeScale) - 1
	}
	return e.rules.SizeScale[idx]
}
