package entities

import (
	"fmt"
	"math"
	"time"
)

// Physiological bounds for manual prescription capture. Values outside these
// ranges are data-entry mistakes, not exotic prescriptions.
const (
	SphereMin = -20.0
	SphereMax = 20.0
	DiopterStep = 0.25

	CylinderMin = -6.0
	CylinderMax = 6.0

	AxisMin = 1
	AxisMax = 180

	AddMin = 0.75
	AddMax = 3.50

	MonocularPDMin = 25.0
	MonocularPDMax = 40.0
	TotalPDMin     = 50.0
	TotalPDMax     = 80.0
)

// EyePrescription holds the correction values for a single eye.
//
// Cylinder and Axis travel together: a non-null cylinder requires an axis,
// and clearing the cylinder clears the axis.

type EyePrescription struct {
	Sphere   float64  `json:"sphere"`
	Cylinder *float64 `json:"cylinder,omitempty"`
	Axis     *int     `json:"axis,omitempty"`
	Add      *float64 `json:"add,omitempty"`
	PD       *float64 `json:"pd,omitempty"`
}

// Prescription is the manual-entry optical record, only meaningful when the
// prescription source is manual.

type Prescription struct {
	RightEye       EyePrescription `json:"right_eye"`
	LeftEye        EyePrescription `json:"left_eye"`
	TotalPD        *float64        `json:"total_pd,omitempty"`
	IssueDate      time.Time       `json:"issue_date"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
}

// IsExpired reports whether the prescription is too old to accept: past its
// explicit expiration date, or issued more than a year ago when no explicit
// expiration was recorded.
func (p *Prescription) IsExpired(now time.Time) bool {
	if p == nil {
		return false
	}
	if p.ExpirationDate != nil {
		return p.ExpirationDate.Before(now)
	}
	if p.IssueDate.IsZero() {
		return false
	}
	return p.IssueDate.Before(now.AddDate(-1, 0, 0))
}

// Validate checks the whole record atomically and returns per-field errors
// keyed like "right_eye.axis". An empty map means the record is committable.
// Nothing is ever committed while this map is non-empty.
func (p *Prescription) Validate(usage UsageType, now time.Time) map[string]string {
	errs := map[string]string{}
	validateEye(&p.RightEye, "right_eye", usage, errs)
	validateEye(&p.LeftEye, "left_eye", usage, errs)

	if p.TotalPD != nil && (*p.TotalPD < TotalPDMin || *p.TotalPD > TotalPDMax) {
		errs["total_pd"] = fmt.Sprintf("total PD must be between %.0f and %.0f mm", TotalPDMin, TotalPDMax)
	}
	if p.IssueDate.IsZero() {
		errs["issue_date"] = "issue date is required"
	} else if p.IssueDate.After(now) {
		errs["issue_date"] = "issue date cannot be in the future"
	}
	if p.IsExpired(now) {
		errs["expiration_date"] = "prescription is expired"
	}
	return errs
}

func validateEye(e *EyePrescription, prefix string, usage UsageType, errs map[string]string) {
	if e.Sphere < SphereMin || e.Sphere > SphereMax {
		errs[prefix+".sphere"] = fmt.Sprintf("sphere must be between %+.2f and %+.2f", SphereMin, SphereMax)
	} else if !onQuarterStep(e.Sphere) {
		errs[prefix+".sphere"] = fmt.Sprintf("sphere must be in steps of %.2f", DiopterStep)
	}

	if e.Cylinder != nil {
		if *e.Cylinder < CylinderMin || *e.Cylinder > CylinderMax {
			errs[prefix+".cylinder"] = fmt.Sprintf("cylinder must be between %+.2f and %+.2f", CylinderMin, CylinderMax)
		} else if !onQuarterStep(*e.Cylinder) {
			errs[prefix+".cylinder"] = fmt.Sprintf("cylinder must be in steps of %.2f", DiopterStep)
		}
		if e.Axis == nil {
			errs[prefix+".axis"] = "axis is required when cylinder is set"
		}
	}
	if e.Axis != nil {
		if e.Cylinder == nil {
			errs[prefix+".axis"] = "axis requires a cylinder value"
		} else if *e.Axis < AxisMin || *e.Axis > AxisMax {
			errs[prefix+".axis"] = fmt.Sprintf("axis must be between %d and %d degrees", AxisMin, AxisMax)
		}
	}

	if e.Add != nil {
		if !usage.SupportsAdd() {
			errs[prefix+".add"] = "addition is only collected for progressive or bifocal lenses"
		} else if *e.Add < AddMin || *e.Add > AddMax {
			errs[prefix+".add"] = fmt.Sprintf("addition must be between %+.2f and %+.2f", AddMin, AddMax)
		}
	}

	if e.PD != nil && (*e.PD < MonocularPDMin || *e.PD > MonocularPDMax) {
		errs[prefix+".pd"] = fmt.Sprintf("PD must be between %.0f and %.0f mm", MonocularPDMin, MonocularPDMax)
	}
}

func onQuarterStep(v float64) bool {
	scaled := v / DiopterStep
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// LensIndexes from thinnest requirement to highest, matching the material
// catalog's index values.
var LensIndexes = []string{"1.50", "1.56", "1.61", "1.67", "1.74"}

// Strength is the magnitude used for index recommendation: the worst eye's
// absolute sphere plus half the worst absolute cylinder.
func (p *Prescription) Strength() float64 {
	if p == nil {
		return 0
	}
	sphere := math.Max(math.Abs(p.RightEye.Sphere), math.Abs(p.LeftEye.Sphere))
	cyl := 0.0
	if p.RightEye.Cylinder != nil {
		cyl = math.Abs(*p.RightEye.Cylinder)
	}
	if p.LeftEye.Cylinder != nil {
		cyl = math.Max(cyl, math.Abs(*p.LeftEye.Cylinder))
	}
	return sphere + cyl/2
}

// RecommendedIndexForStrength maps prescription strength to the minimum lens
// index worth recommending. Advisory only, never gates progression.
func RecommendedIndexForStrength(strength float64) string {
	switch {
	case strength <= 2.00:
		return "1.50"
	case strength <= 4.00:
		return "1.56"
	case strength <= 6.00:
		return "1.61"
	case strength <= 8.00:
		return "1.67"
	default:
		return "1.74"
	}
}

// RecommendedIndex is RecommendedIndexForStrength over this prescription.
func (p *Prescription) RecommendedIndex() string {
	return RecommendedIndexForStrength(p.Strength())
}

// IndexTier returns the position of a lens index within LensIndexes, or -1.
func IndexTier(index string) int {
	for i, v := range LensIndexes {
		if v == index {
			return i
		}
	}
	return -1
}

// IndexAtLeast reports whether index meets or exceeds the minimum index.
func IndexAtLeast(index, minimum string) bool {
	it, mt := IndexTier(index), IndexTier(minimum)
	return it >= 0 && mt >= 0 && it >= mt
}

// SavedPrescription is a prescription stored on the customer's account,
// selectable in the saved capture mode while still valid.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type SavedPrescription struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Label        string       `json:"label"`
	Prescription Prescription `json:"prescription"`
	CreatedAt    time.Time    `json:"created_at"`
}
