// internal/engine/profiles.go
package engine

// GarmentProfile describes which measurements matter for a garment type and
// which single dimension drives sizing.
type GarmentProfile struct {
	Primary   []string
	Secondary []string
	FitFocus  string
}

var garmentProfiles = map[string]GarmentProfile{
	"shirt": {
		Primary:   []string{DimChest, DimShoulderWidth},
		Secondary: []string{DimArmLength, DimTorsoLength},
		FitFocus:  DimChest,
	},
	"pants": {
		Primary:   []string{DimWaist, DimHip, DimInseam},
		Secondary: []string{DimThigh},
		FitFocus:  DimWaist,
	},
	"dress": {
		Primary:   []string{DimChest, DimWaist, DimHip},
		Secondary: []string{DimTorsoLength},
		FitFocus:  DimWaist,
	},
	"jacket": {
		Primary:   []string{DimChest, DimShoulderWidth},
		Secondary: []string{DimArmLength, DimTorsoLength},
		FitFocus:  DimChest,
	},
	"skirt": {
		Primary:   []string{DimWaist, DimHip},
		Secondary: []string{DimTorsoLength},
		FitFocus:  DimWaist,
	},
}

// ProfileFor resolves the garment profile; unknown garment types fall back to
// the shirt profile.
func ProfileFor(garmentType string) GarmentProfile {
	if p, ok := garmentProfiles[garmentType]; ok {
		return p
	}
	return garmentProfiles["shirt"]
}
