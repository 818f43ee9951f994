package entities_test

import (
	"testing"

	"optica_xpto/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestComputePricing(t *testing.T) {
	material := entities.LensMaterial{ID: "mat-161", Index: "1.61", Price: 95}
	treatments := catalogTreatments()
	byID := map[string]entities.Treatment{}
	for _, tr := range treatments {
		byID[tr.ID] = tr
	}
	pick := func(ids ...string) []entities.Treatment {
		out := make([]entities.Treatment, 0, len(ids))
		for _, id := range ids {
			out = append(out, byID[id])
		}
		return out
	}

	t.Run("itemized total without bundle", func(t *testing.T) {
		b := entities.ComputePricing(120, entities.UsageTypeComputer, &material,
			pick("treat-ar"), entities.DefaultTreatmentBundles, []string{"treat-ar"})

		require.Equal(t, 120.0, b.FrameBase)
		require.Equal(t, 15.0, b.UsageSurcharge)
		require.Equal(t, 95.0, b.MaterialPrice)
		require.Equal(t, 30.0, b.TreatmentsTotal)
		require.Equal(t, 0.0, b.Discount)
		require.InDelta(t, 260.0, b.Total, 1e-9)
	})

	t.Run("exact bundle match applies discount", func(t *testing.T) {
		selected := []string{"treat-scratch", "treat-ar"} // order must not matter
		b := entities.ComputePricing(120, entities.UsageTypeDistance, &material,
			pick(selected...), entities.DefaultTreatmentBundles, selected)

		require.Equal(t, 5.0, b.Discount)
		require.InDelta(t, 120+95+50-5, b.Total, 1e-9)
	})

	t.Run("superset of a bundle gets no discount", func(t *testing.T) {
		selected := []string{"treat-ar", "treat-scratch", "treat-uv"}
		b := entities.ComputePricing(120, entities.UsageTypeDistance, &material,
			pick(selected...), entities.DefaultTreatmentBundles, selected)

		require.Equal(t, 0.0, b.Discount)
	})

	t.Run("progressive surcharge without material", func(t *testing.T) {
		b := entities.ComputePricing(120, entities.UsageTypeProgressive, nil, nil,
			entities.DefaultTreatmentBundles, nil)

		require.Equal(t, 90.0, b.UsageSurcharge)
		require.Equal(t, 0.0, b.MaterialPrice)
		require.InDelta(t, 210.0, b.Total, 1e-9)
	})
}
