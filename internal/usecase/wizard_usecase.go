package usecase

import (
	"context"

	"optica_xpto/internal/domain/entities"
)

// WizardView is the orchestrator's answer to "what should render now": the
// resolved step (deep links past unfinished steps are corrected, never
// honored), its controller's view payload and the derived progress.
type WizardView struct {
	State entities.ConfiguratorState `json:"state"`
	// ResolvedStep may differ from the requested step; the client is
	// expected to rewrite its URL to match.
	ResolvedStep entities.Step `json:"resolved_step"`
	CanProceed   bool          `json:"can_proceed"`
	Progress     float64       `json:"progress"`

	UsageStep        *UsageStepView        `json:"usage_step,omitempty"`
	PrescriptionStep *PrescriptionStepView `json:"prescription_step,omitempty"`
	MaterialStep     *MaterialStepView     `json:"material_step,omitempty"`
	TreatmentStep    *TreatmentStepView    `json:"treatment_step,omitempty"`
	ReviewStep       *ReviewStepView       `json:"review_step,omitempty"`
}

// IWizardUseCase sequences the steps: it resolves the requested step to a
// legal one, moves the cursor and renders exactly one step controller. A
// step controller never renders while an earlier step is unsatisfied.

type IWizardUseCase interface {
	Start(ctx context.Context, sessionID, frameID string) (WizardView, error)
	Current(ctx context.Context, sessionID string, requested entities.Step) (WizardView, error)
	Next(ctx context.Context, sessionID string) (WizardView, bool, error)
	Prev(ctx context.Context, sessionID string) (WizardView, error)
	Cancel(ctx context.Context, sessionID string) error
}

type WizardUseCase struct {
	store        IConfigurationUseCase
	usage        IUsageStepUseCase
	prescription IPrescriptionStepUseCase
	material     IMaterialStepUseCase
	treatment    ITreatmentStepUseCase
	review       IReviewStepUseCase
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	store IConfigurationUseCase,
	usage IUsageStepUseCase,
	prescription IPrescriptionStepUseCase,
	material IMaterialStepUseCase,
	treatment ITreatmentStepUseCase,
	review IReviewStepUseCase,
) *WizardUseCase {
	return &WizardUseCase{
		store:        store,
		usage:        usage,
		prescription: prescription,
		material:     material,
		treatment:    treatment,
		review:       review,
	}
}

func (u *WizardUseCase) Start(ctx context.Context, sessionID, frameID string) (WizardView, error) {
	state, err := u.store.InitConfiguration(ctx, sessionID, frameID)
	if err != nil {
		return WizardView{}, err
	}
	return u.render(ctx, sessionID, state)
}

// Current resolves the requested step (empty means "wherever the cursor is")
// against the forward-skip guard and renders the resolved step.
func (u *WizardUseCase) Current(ctx context.Context, sessionID string, requested entities.Step) (WizardView, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	if requested == "" {
		requested = state.Configuration.CurrentStep
	}
	resolved := state.ResolveStep(requested)
	if resolved != state.Configuration.CurrentStep {
		state, err = u.store.GoToStep(ctx, sessionID, resolved)
		if err != nil {
			return WizardView{}, err
		}
	}
	return u.render(ctx, sessionID, state)
}

func (u *WizardUseCase) Next(ctx context.Context, sessionID string) (WizardView, bool, error) {
	state, advanced, err := u.store.NextStep(ctx, sessionID)
	if err != nil {
		return WizardView{}, false, err
	}
	view, err := u.render(ctx, sessionID, state)
	return view, advanced, err
}

func (u *WizardUseCase) Prev(ctx context.Context, sessionID string) (WizardView, error) {
	state, err := u.store.PrevStep(ctx, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	return u.render(ctx, sessionID, state)
}

// Cancel is the explicit user cancellation; confirmation happens client-side.
func (u *WizardUseCase) Cancel(ctx context.Context, sessionID string) error {
	return u.store.Reset(ctx, sessionID)
}

func (u *WizardUseCase) render(ctx context.Context, sessionID string, state entities.ConfiguratorState) (WizardView, error) {
	view := WizardView{
		State:        state,
		ResolvedStep: state.Configuration.CurrentStep,
		CanProceed:   state.CanProceed(),
		Progress:     state.Progress(),
	}
	switch state.Configuration.CurrentStep {
	case entities.StepUsageType:
		v, err := u.usage.View(ctx, sessionID)
		if err != nil {
			return WizardView{}, err
		}
		view.UsageStep = &v
	case entities.StepPrescription:
		v, err := u.prescription.View(ctx, sessionID)
		if err != nil {
			return WizardView{}, err
		}
		view.PrescriptionStep = &v
	case entities.StepMaterial:
		v, err := u.material.View(ctx, sessionID)
		if err != nil {
			return WizardView{}, err
		}
		view.MaterialStep = &v
	case entities.StepTreatments:
		v, err := u.treatment.View(ctx, sessionID)
		if err != nil {
			return WizardView{}, err
		}
		view.TreatmentStep = &v
	case entities.StepReview:
		v, err := u.review.View(ctx, sessionID)
		if err != nil {
			return WizardView{}, err
		}
		view.ReviewStep = &v
	}
	return view, nil
}
