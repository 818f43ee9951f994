package response

import (
	"time"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase"
)

type ConfigurationResponse struct {
	ID           string                          `json:"id"`
	FrameID      string                          `json:"frame_id"`
	CurrentStep  string                          `json:"current_step"`
	IsComplete   bool                            `json:"is_complete"`
	UsageType    string                          `json:"usage_type,omitempty"`
	Prescription *entities.PrescriptionSelection `json:"prescription,omitempty"`
	MaterialID   string                          `json:"material_id,omitempty"`
	TreatmentIDs []string                        `json:"treatment_ids"`
	Pricing      *entities.PriceBreakdown        `json:"pricing,omitempty"`
	CreatedAt    time.Time                       `json:"created_at"`
	UpdatedAt    time.Time                       `json:"updated_at"`
	ExpiresAt    time.Time                       `json:"expires_at"`
}

func FromConfiguration(c *entities.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:           c.ID,
		FrameID:      c.FrameID,
		CurrentStep:  string(c.CurrentStep),
		IsComplete:   c.IsComplete,
		UsageType:    string(c.UsageType),
		Prescription: c.Prescription,
		MaterialID:   c.MaterialID,
		TreatmentIDs: c.TreatmentIDs,
		Pricing:      c.Pricing,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		ExpiresAt:    c.ExpiresAt,
	}
}

// WizardViewResponse is the orchestrator payload: the resolved step decides
// which single step view is populated. Clients rewrite their step query
// parameter to ResolvedStep.
type WizardViewResponse struct {
	Configuration    ConfigurationResponse         `json:"configuration"`
	ResolvedStep     string                        `json:"resolved_step"`
	CompletedSteps   []entities.Step               `json:"completed_steps"`
	CanProceed       bool                          `json:"can_proceed"`
	Progress         float64                       `json:"progress"`
	Advanced         *bool                         `json:"advanced,omitempty"`
	UsageStep        *usecase.UsageStepView        `json:"usage_step,omitempty"`
	PrescriptionStep *usecase.PrescriptionStepView `json:"prescription_step,omitempty"`
	MaterialStep     *usecase.MaterialStepView     `json:"material_step,omitempty"`
	TreatmentStep    *usecase.TreatmentStepView    `json:"treatment_step,omitempty"`
	ReviewStep       *usecase.ReviewStepView       `json:"review_step,omitempty"`
}

func FromWizardView(v usecase.WizardView) WizardViewResponse {
	return WizardViewResponse{
		Configuration:    FromConfiguration(v.State.Configuration),
		ResolvedStep:     string(v.ResolvedStep),
		CompletedSteps:   v.State.CompletedSteps,
		CanProceed:       v.CanProceed,
		Progress:         v.Progress,
		UsageStep:        v.UsageStep,
		PrescriptionStep: v.PrescriptionStep,
		MaterialStep:     v.MaterialStep,
		TreatmentStep:    v.TreatmentStep,
		ReviewStep:       v.ReviewStep,
	}
}

// StateResponse wraps a bare store mutation result (no step view rendered).
type StateResponse struct {
	Configuration  ConfigurationResponse `json:"configuration"`
	CompletedSteps []entities.Step       `json:"completed_steps"`
	CanProceed     bool                  `json:"can_proceed"`
	Progress       float64               `json:"progress"`
	FieldErrors    map[string]string     `json:"field_errors,omitempty"`
}

func FromState(s entities.ConfiguratorState) StateResponse {
	return StateResponse{
		Configuration:  FromConfiguration(s.Configuration),
		CompletedSteps: s.CompletedSteps,
		CanProceed:     s.CanProceed(),
		Progress:       s.Progress(),
	}
}
