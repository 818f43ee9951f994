package request

import (
	"errors"
	"time"

	"optica_xpto/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

type EyePrescriptionRequest struct {
	Sphere   *float64 `json:"sphere" binding:"required"`
	Cylinder *float64 `json:"cylinder"`
	Axis     *int     `json:"axis"`
	Add      *float64 `json:"add"`
	PD       *float64 `json:"pd"`
}

// ManualPrescriptionRequest is the structured form payload for the manual
// capture mode. Dates travel as YYYY-MM-DD strings.
type ManualPrescriptionRequest struct {
	RightEye       EyePrescriptionRequest `json:"right_eye" binding:"required"`
	LeftEye        EyePrescriptionRequest `json:"left_eye" binding:"required"`
	TotalPD        *float64               `json:"total_pd"`
	IssueDate      string                 `json:"issue_date" binding:"required"`
	ExpirationDate string                 `json:"expiration_date"`
}

// ToPrescription translates the payload into the domain value object.
// Domain-level range validation happens in the step controller; only the
// date encoding is resolved here.
func (r ManualPrescriptionRequest) ToPrescription() (entities.Prescription, error) {
	issueDate, err := time.Parse(dateLayout, r.IssueDate)
	if err != nil {
		return entities.Prescription{}, ErrInvalidDate
	}

	p := entities.Prescription{
		RightEye:  toEye(r.RightEye),
		LeftEye:   toEye(r.LeftEye),
		TotalPD:   r.TotalPD,
		IssueDate: issueDate,
	}
	if r.ExpirationDate != "" {
		expiration, err := time.Parse(dateLayout, r.ExpirationDate)
		if err != nil {
			return entities.Prescription{}, ErrInvalidDate
		}
		p.ExpirationDate = &expiration
	}
	return p, nil
}

func toEye(e EyePrescriptionRequest) entities.EyePrescription {
	eye := entities.EyePrescription{
		Cylinder: e.Cylinder,
		Axis:     e.Axis,
		Add:      e.Add,
		PD:       e.PD,
	}
	if e.Sphere != nil {
		eye.Sphere = *e.Sphere
	}
	return eye
}
