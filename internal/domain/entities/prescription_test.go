package entities_test

import (
	"testing"
	"time"

	"optica_xpto/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func validPrescription(now time.Time) entities.Prescription {
	return entities.Prescription{
		RightEye:  entities.EyePrescription{Sphere: -2.25},
		LeftEye:   entities.EyePrescription{Sphere: -2.00},
		IssueDate: now.AddDate(0, -2, 0),
	}
}

func TestPrescription_ValidateAcceptsCleanRecord(t *testing.T) {
	now := time.Now()
	p := validPrescription(now)
	p.RightEye.Cylinder = f64(-0.75)
	p.RightEye.Axis = iptr(90)
	p.RightEye.PD = f64(31.5)
	p.TotalPD = f64(63)

	require.Empty(t, p.Validate(entities.UsageTypeDistance, now))
}

func TestPrescription_ValidateFieldErrors(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		mutate  func(*entities.Prescription)
		usage   entities.UsageType
		wantKey string
	}{
		{
			name:    "sphere out of range",
			mutate:  func(p *entities.Prescription) { p.RightEye.Sphere = -21 },
			usage:   entities.UsageTypeDistance,
			wantKey: "right_eye.sphere",
		},
		{
			name:    "sphere off quarter step",
			mutate:  func(p *entities.Prescription) { p.LeftEye.Sphere = 1.30 },
			usage:   entities.UsageTypeDistance,
			wantKey: "left_eye.sphere",
		},
		{
			name:    "cylinder without axis",
			mutate:  func(p *entities.Prescription) { p.RightEye.Cylinder = f64(-1.25) },
			usage:   entities.UsageTypeDistance,
			wantKey: "right_eye.axis",
		},
		{
			name: "axis without cylinder",
			mutate: func(p *entities.Prescription) {
				p.LeftEye.Axis = iptr(90)
			},
			usage:   entities.UsageTypeDistance,
			wantKey: "left_eye.axis",
		},
		{
			name: "axis out of range",
			mutate: func(p *entities.Prescription) {
				p.RightEye.Cylinder = f64(-1.25)
				p.RightEye.Axis = iptr(181)
			},
			usage:   entities.UsageTypeDistance,
			wantKey: "right_eye.axis",
		},
		{
			name:    "add on single vision usage",
			mutate:  func(p *entities.Prescription) { p.RightEye.Add = f64(2.00) },
			usage:   entities.UsageTypeDistance,
			wantKey: "right_eye.add",
		},
		{
			name:    "add out of range",
			mutate:  func(p *entities.Prescription) { p.RightEye.Add = f64(4.00) },
			usage:   entities.UsageTypeProgressive,
			wantKey: "right_eye.add",
		},
		{
			name:    "monocular pd out of range",
			mutate:  func(p *entities.Prescription) { p.LeftEye.PD = f64(45) },
			usage:   entities.UsageTypeDistance,
			wantKey: "left_eye.pd",
		},
		{
			name:    "total pd out of range",
			mutate:  func(p *entities.Prescription) { p.TotalPD = f64(90) },
			usage:   entities.UsageTypeDistance,
			wantKey: "total_pd",
		},
		{
			name:    "missing issue date",
			mutate:  func(p *entities.Prescription) { p.IssueDate = time.Time{} },
			usage:   entities.UsageTypeDistance,
			wantKey: "issue_date",
		},
		{
			name:    "future issue date",
			mutate:  func(p *entities.Prescription) { p.IssueDate = now.AddDate(0, 0, 1) },
			usage:   entities.UsageTypeDistance,
			wantKey: "issue_date",
		},
		{
			name: "explicitly expired",
			mutate: func(p *entities.Prescription) {
				exp := now.AddDate(0, 0, -1)
				p.ExpirationDate = &exp
			},
			usage:   entities.UsageTypeDistance,
			wantKey: "expiration_date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPrescription(now)
			tc.mutate(&p)
			errs := p.Validate(tc.usage, now)
			require.Contains(t, errs, tc.wantKey)
		})
	}
}

func TestPrescription_ValidateAllowsAddForProgressive(t *testing.T) {
	now := time.Now()
	p := validPrescription(now)
	p.RightEye.Add = f64(2.00)
	p.LeftEye.Add = f64(2.00)

	require.Empty(t, p.Validate(entities.UsageTypeProgressive, now))
}

func TestPrescription_IsExpired(t *testing.T) {
	now := time.Now()

	t.Run("implicit one year validity", func(t *testing.T) {
		p := entities.Prescription{IssueDate: now.AddDate(0, -11, 0)}
		require.False(t, p.IsExpired(now))

		p.IssueDate = now.AddDate(-1, 0, -1)
		require.True(t, p.IsExpired(now))
	})

	t.Run("explicit expiration wins", func(t *testing.T) {
		exp := now.AddDate(2, 0, 0)
		p := entities.Prescription{IssueDate: now.AddDate(-3, 0, 0), ExpirationDate: &exp}
		require.False(t, p.IsExpired(now))
	})
}

func TestPrescription_Strength(t *testing.T) {
	p := entities.Prescription{
		RightEye: entities.EyePrescription{Sphere: -6.00, Cylinder: f64(-2.00)},
		LeftEye:  entities.EyePrescription{Sphere: 4.50, Cylinder: f64(-1.00)},
	}
	// worst sphere 6.00 plus half the worst cylinder 2.00
	require.InDelta(t, 7.00, p.Strength(), 1e-9)
}

func TestRecommendedIndexForStrength(t *testing.T) {
	cases := []struct {
		strength float64
		want     string
	}{
		{0.50, "1.50"},
		{2.00, "1.50"},
		{2.25, "1.56"},
		{4.00, "1.56"},
		{4.25, "1.61"},
		{6.00, "1.61"},
		{7.00, "1.67"},
		{8.00, "1.67"},
		{8.25, "1.74"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, entities.RecommendedIndexForStrength(tc.strength), "strength %.2f", tc.strength)
	}
}

func TestIndexAtLeast(t *testing.T) {
	require.True(t, entities.IndexAtLeast("1.67", "1.61"))
	require.True(t, entities.IndexAtLeast("1.61", "1.61"))
	require.False(t, entities.IndexAtLeast("1.56", "1.61"))
	require.False(t, entities.IndexAtLeast("9.99", "1.50"))
}
