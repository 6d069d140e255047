// internal/engine/measurements.go
package engine

import "fitting-engine/internal/catalog"

// Dimension names used across measurements, garment profiles, and size charts.
const (
	DimHeight        = "height"
	DimChest         = "chest"
	DimWaist         = "waist"
	DimShoulderWidth = "shoulder_width"
	DimHip           = "hip"
	DimInseam        = "inseam"
	DimTorsoLength   = "torso_length"
	DimArmLength     = "arm_length"
	DimThigh         = "thigh"
)

// Measurements maps dimension names to scan values. Values are scan widths
// except height, which is already a length. Treated as immutable once built;
// Normalize returns a fresh copy.
type Measurements map[string]float64

// Get returns the value for a dimension, 0 if the scan did not capture it.
func (m Measurements) Get(dim string) float64 {
	return m[dim]
}

// FromScan builds Measurements from a body scan. Optional dimensions are only
// set when the scan captured them.
func FromScan(scan catalog.BodyScan) Measurements {
	m := Measurements{
		DimHeight:        scan.Height,
		DimChest:         scan.Chest,
		DimWaist:         scan.Waist,
		DimShoulderWidth: scan.ShoulderWidth,
	}
	if scan.Hip > 0 {
		m[DimHip] = scan.Hip
	}
	if scan.Inseam > 0 {
		m[DimInseam] = scan.Inseam
	}
	if scan.TorsoLength > 0 {
		m[DimTorsoLength] = scan.TorsoLength
	}
	if scan.ArmLength > 0 {
		m[DimArmLength] = scan.ArmLength
	}
	return m
}

// Normalize converts scan widths into circumference estimates by applying the
// width-to-circumference factor. Height passes through unchanged.
func (e *Engine) Normalize(m Measurements) Measurements {
	out := make(Measurements, len(m))
	for dim, v := range m {
		if dim == DimHeight {
			out[dim] = v
			continue
		}
		out[dim] = v * e.rules.WidthToCircumference
	}
	return out
}
