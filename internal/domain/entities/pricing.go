package entities

// UsageSurcharges is the static per-usage price table. Progressive and
// bifocal lenses carry the graduated-lens machining premium.
var UsageSurcharges = map[UsageType]float64{
	UsageTypeDistance:        0,
	UsageTypeNear:            0,
	UsageTypeComputer:        15.00,
	UsageTypeProgressive:     90.00,
	UsageTypeBifocal:         60.00,
	UsageTypeNonPrescription: 0,
}

// PriceBreakdown is the derived configuration total. Recomputed from the
// stored IDs on every review, never hand-edited.

type PriceBreakdown struct {
	FrameBase       float64 `json:"frame_base"`
	UsageSurcharge  float64 `json:"usage_surcharge"`
	MaterialPrice   float64 `json:"material_price"`
	TreatmentsTotal float64 `json:"treatments_total"`
	Discount        float64 `json:"discount"`
	Total           float64 `json:"total"`
}

// ComputePricing assembles the breakdown from the price tables. The bundle
// discount applies when the selected treatment set matches a bundle exactly.
func ComputePricing(framePrice float64, usage UsageType, material *LensMaterial, treatments []Treatment, bundles []TreatmentBundle, selected []string) PriceBreakdown {
	b := PriceBreakdown{
		FrameBase:      framePrice,
		UsageSurcharge: UsageSurcharges[usage],
	}
	if material != nil {
		b.MaterialPrice = material.Price
	}
	for _, t := range treatments {
		b.TreatmentsTotal += t.Price
	}
	if bundle := matchBundle(bundles, selected); bundle != nil {
		b.Discount = bundle.Discount
	}
	b.Total = b.FrameBase + b.UsageSurcharge + b.MaterialPrice + b.TreatmentsTotal - b.Discount
	return b
}

func matchBundle(bundles []TreatmentBundle, selected []string) *TreatmentBundle {
	for i, bundle := range bundles {
		if sameIDSet(bundle.TreatmentIDs, selected) {
			return &bundles[i]
		}
	}
	return nil
}

// sameIDSet compares treatment ID slices order-independently.
func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
