package usecase

import (
	"context"
	"errors"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"
)

var ErrStepsIncomplete = errors.New("configuration steps incomplete")

type ReviewStepView struct {
	Pricing entities.PriceBreakdown `json:"pricing"`
	// Prescription summary: the manual record in table form, or a
	// placeholder describing the non-manual source.
	PrescriptionSummary *entities.Prescription              `json:"prescription_summary,omitempty"`
	PrescriptionSource  entities.PrescriptionSource         `json:"prescription_source,omitempty"`
	CanComplete         bool                                `json:"can_complete"`
	OutstandingErrors   map[entities.Step]map[string]string `json:"outstanding_errors,omitempty"`
}

// IReviewStepUseCase is the review step controller: purely derivational
// pricing plus the finalization gate. Complete refuses while any earlier
// step is unsatisfied or carries recorded errors.

type IReviewStepUseCase interface {
	View(ctx context.Context, sessionID string) (ReviewStepView, error)
	Complete(ctx context.Context, sessionID string) (entities.ConfiguratorState, error)
}

type ReviewStepUseCase struct {
	store      IConfigurationUseCase
	materials  interfaces.IMaterialRepository
	treatments interfaces.ITreatmentRepository
	bundles    []entities.TreatmentBundle
}

var _ IReviewStepUseCase = (*ReviewStepUseCase)(nil)

func NewReviewStepUseCase(store IConfigurationUseCase, materials interfaces.IMaterialRepository, treatments interfaces.ITreatmentRepository, bundles []entities.TreatmentBundle) *ReviewStepUseCase {
	return &ReviewStepUseCase{store: store, materials: materials, treatments: treatments, bundles: bundles}
}

func (u *ReviewStepUseCase) View(ctx context.Context, sessionID string) (ReviewStepView, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return ReviewStepView{}, err
	}
	pricing, err := u.computePricing(ctx, state)
	if err != nil {
		return ReviewStepView{}, err
	}
	if _, err := u.store.SetPricing(ctx, sessionID, pricing); err != nil {
		return ReviewStepView{}, err
	}

	view := ReviewStepView{
		Pricing:           pricing,
		CanComplete:       stepsSatisfied(state) && len(state.StepErrors) == 0,
		OutstandingErrors: state.StepErrors,
	}
	if sel := state.Configuration.Prescription; sel != nil {
		view.PrescriptionSource = sel.Source
		view.PrescriptionSummary = sel.Manual
	}
	return view, nil
}

// computePricing assembles the breakdown from the price tables keyed by the
// IDs stored in the configuration.
func (u *ReviewStepUseCase) computePricing(ctx context.Context, state entities.ConfiguratorState) (entities.PriceBreakdown, error) {
	var material *entities.LensMaterial
	if id := state.Configuration.MaterialID; id != "" {
		m, err := u.materials.GetByID(ctx, id)
		if err != nil {
			return entities.PriceBreakdown{}, err
		}
		if m.ID != "" {
			material = &m
		}
	}
	var selected []entities.Treatment
	for _, id := range state.Configuration.TreatmentIDs {
		t, err := u.treatments.GetByID(ctx, id)
		if err != nil {
			return entities.PriceBreakdown{}, err
		}
		if t.ID != "" {
			selected = append(selected, t)
		}
	}
	return entities.ComputePricing(
		state.FramePrice,
		state.Configuration.UsageType,
		material,
		selected,
		u.bundles,
		state.Configuration.TreatmentIDs,
	), nil
}

// stepsSatisfied checks every pre-review guard.
func stepsSatisfied(state entities.ConfiguratorState) bool {
	for _, step := range entities.StepOrder {
		if step == entities.StepReview {
			return true
		}
		if !state.CanProceedFrom(step) {
			return false
		}
	}
	return true
}

// Complete finalizes the configuration on explicit confirmation only.
func (u *ReviewStepUseCase) Complete(ctx context.Context, sessionID string) (entities.ConfiguratorState, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	if !stepsSatisfied(state) || len(state.StepErrors) > 0 {
		return entities.ConfiguratorState{}, ErrStepsIncomplete
	}
	pricing, err := u.computePricing(ctx, state)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	if _, err := u.store.SetPricing(ctx, sessionID, pricing); err != nil {
		return entities.ConfiguratorState{}, err
	}
	return u.store.FinalizeConfiguration(ctx, sessionID)
}
