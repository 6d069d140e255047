// internal/catalog/models.go
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// SizeRange is one row of a size chart: a named size with circumference
// bounds. Charts are ordered ascending by ChestMin.
type SizeRange struct {
	Name     string  `json:"name"`
	ChestMin float64 `json:"chest_min"`
	ChestMax float64 `json:"chest_max"`
	WaistMin float64 `json:"waist_min"`
	WaistMax float64 `json:"waist_max"`
}

// Color is a catalog color with a display name and hex code.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex_code"`
}

// Product is a sellable catalog product.
type Product struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"` // garment type: shirt, pants, dress, jacket, skirt
	Gender   string    `json:"gender"`   // men, women, unisex
	FitType  string    `json:"fit_type"` // slim, regular, oversize
}

// Variant is a concrete size/color combination of a product.
type Variant struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Size      string    `json:"size"`
	Color     Color     `json:"color"`
	Quantity  int       `json:"quantity"`
}

// BodyScan carries one user's measurements and skin classification.
// Optional dimensions are zero when the scan did not capture them.
type BodyScan struct {
	ID            uuid.UUID `json:"id"`
	Height        float64   `json:"height"`
	Chest         float64   `json:"chest"`
	Waist         float64   `json:"waist"`
	ShoulderWidth float64   `json:"shoulder_width"`
	Hip           float64   `json:"hip"`
	Inseam        float64   `json:"inseam"`
	TorsoLength   float64   `json:"torso_length"`
	ArmLength     float64   `json:"arm_length"`
	SkinTone      string    `json:"skin_tone"`
	Undertone     string    `json:"undertone"`
	BodyShape     string    `json:"body_shape"`
	CreatedAt     time.Time `json:"created_at"`
}

// Recommendation is the persisted outcome of one scan/product decision.
type Recommendation struct {
	ID        uuid.UUID `json:"id"`
	ScanID    uuid.UUID `json:"scan_id"`
	ProductID uuid.UUID `json:"product_id"`
	Size      string    `json:"recommended_size"`
	Fit       string    `json:"recommended_fit"`
	Colors    string    `json:"recommended_colors"` // first few color names joined ", "
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}
