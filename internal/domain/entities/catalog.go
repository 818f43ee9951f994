package entities

import "fmt"

// Frame is the product snapshot the configurator needs from the catalog
// collaborator. Looked up once at configuration start and kept with the
// persisted state so step filtering never re-fetches it.

type Frame struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	BasePrice               float64  `json:"base_price"`
	SunglassesOnly          bool     `json:"sunglasses_only"`
	SupportsGraduatedLenses bool     `json:"supports_graduated_lenses"`
	CompatibleLensIndexes   []string `json:"compatible_lens_indexes"`
}

// SupportsPrescriptionLenses reports whether any prescription-requiring usage
// type may be offered for this frame.
func (f *Frame) SupportsPrescriptionLenses() bool {
	return f != nil && !f.SunglassesOnly && f.SupportsGraduatedLenses
}

func (f *Frame) SupportsIndex(index string) bool {
	if f == nil {
		return false
	}
	for _, v := range f.CompatibleLensIndexes {
		if v == index {
			return true
		}
	}
	return false
}

// LensMaterial is a lens substrate option from the materials reference table.
//
// Storage model (DynamoDB):
//   - PK: id

type LensMaterial struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Index  string  `json:"index"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}

// Treatment is an optional lens coating/feature from the treatments reference
// table, with the compatibility metadata the treatments step filters against.
//
// Storage model (DynamoDB):
//   - PK: id

type Treatment struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Category           string      `json:"category"`
	Price              float64     `json:"price"`
	Active             bool        `json:"active"`
	ExcludedUsageTypes []UsageType `json:"excluded_usage_types,omitempty"`
	// RequiredMaterials is an allow-list of material IDs; empty means the
	// treatment applies to any material.
	RequiredMaterials []string `json:"required_materials,omitempty"`
	IncompatibleWith  []string `json:"incompatible_with,omitempty"`
}

func (t *Treatment) ExcludedForUsage(usage UsageType) bool {
	for _, u := range t.ExcludedUsageTypes {
		if u == usage {
			return true
		}
	}
	return false
}

func (t *Treatment) AllowedForMaterial(materialID string) bool {
	if len(t.RequiredMaterials) == 0 {
		return true
	}
	for _, id := range t.RequiredMaterials {
		if id == materialID {
			return true
		}
	}
	return false
}

func (t *Treatment) IncompatibleWithID(otherID string) bool {
	for _, id := range t.IncompatibleWith {
		if id == otherID {
			return true
		}
	}
	return false
}

// TreatmentBundle is a curated one-shot treatment set. Bundles are applied
// atomically and trusted to be internally consistent; ValidateBundles keeps
// that trust honest at startup.

type TreatmentBundle struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	TreatmentIDs []string `json:"treatment_ids"`
	Discount     float64  `json:"discount"`
}

// DefaultTreatmentBundles are the three presets offered on the treatments step.
var DefaultTreatmentBundles = []TreatmentBundle{
	{
		ID:           "bundle-essential",
		Name:         "Essential",
		TreatmentIDs: []string{"treat-ar", "treat-scratch"},
		Discount:     5.00,
	},
	{
		ID:           "bundle-office",
		Name:         "Office",
		TreatmentIDs: []string{"treat-ar", "treat-scratch", "treat-blue"},
		Discount:     12.00,
	},
	{
		ID:           "bundle-outdoor",
		Name:         "Outdoor",
		TreatmentIDs: []string{"treat-ar", "treat-scratch", "treat-photo", "treat-uv"},
		Discount:     18.00,
	},
}

// ValidateBundles asserts every bundle references known treatments and
// contains no mutually incompatible pair. Run at wiring time so catalog
// drift breaks startup instead of silently applying an illegal combination.
func ValidateBundles(bundles []TreatmentBundle, treatments []Treatment) error {
	byID := make(map[string]Treatment, len(treatments))
	for _, t := range treatments {
		byID[t.ID] = t
	}
	for _, b := range bundles {
		for i, id := range b.TreatmentIDs {
			t, ok := byID[id]
			if !ok {
				return fmt.Errorf("bundle %s references unknown treatment %s", b.ID, id)
			}
			for _, otherID := range b.TreatmentIDs[i+1:] {
				other, ok := byID[otherID]
				if !ok {
					return fmt.Errorf("bundle %s references unknown treatment %s", b.ID, otherID)
				}
				if t.IncompatibleWithID(otherID) || other.IncompatibleWithID(id) {
					return fmt.Errorf("bundle %s contains incompatible treatments %s and %s", b.ID, id, otherID)
				}
			}
		}
	}
	return nil
}
