package request

import (
	"strings"

	"optica_xpto/internal/domain/entities"
)

type StartConfigurationRequest struct {
	FrameID string `json:"frame_id" binding:"required"`
}

func (r StartConfigurationRequest) ResolveFrameID() string {
	return strings.TrimSpace(r.FrameID)
}

type GoToStepRequest struct {
	Step string `json:"step" binding:"required"`
}

func (r GoToStepRequest) ResolveStep() entities.Step {
	return entities.Step(strings.TrimSpace(r.Step))
}

type UsageTypeRequest struct {
	UsageType string `json:"usage_type" binding:"required"`
}

func (r UsageTypeRequest) ResolveUsageType() entities.UsageType {
	return entities.UsageType(strings.TrimSpace(r.UsageType))
}

type PrescriptionSourceRequest struct {
	Source string `json:"source" binding:"required"`
}

func (r PrescriptionSourceRequest) ResolveSource() entities.PrescriptionSource {
	return entities.PrescriptionSource(strings.TrimSpace(r.Source))
}

type SavedPrescriptionRequest struct {
	SavedPrescriptionID string `json:"saved_prescription_id" binding:"required"`
}

type UploadPrescriptionRequest struct {
	FileURL     string `json:"file_url" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	SizeBytes   int64  `json:"size_bytes" binding:"required"`
}

type AppointmentRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
}

type MaterialRequest struct {
	MaterialID string `json:"material_id" binding:"required"`
}

type TreatmentToggleRequest struct {
	TreatmentID string `json:"treatment_id" binding:"required"`
}

type TreatmentBundleRequest struct {
	BundleID string `json:"bundle_id" binding:"required"`
}
