package usecase

import (
	"context"
	"errors"

	"optica_xpto/internal/domain/entities"
)

var ErrUsageTypeNotAvailable = errors.New("usage type not available for this frame")

// UsageOption is one selectable usage type with the notice flags the step
// surfaces to the buyer.
type UsageOption struct {
	Type                 entities.UsageType `json:"type"`
	PrescriptionRequired bool               `json:"prescription_required"`
	Selected             bool               `json:"selected"`
}

type UsageStepView struct {
	Options []UsageOption `json:"options"`
	// PrescriptionNotice is set once a prescription-requiring type is
	// selected: a prescription will be needed on the next step.
	PrescriptionNotice bool `json:"prescription_notice"`
}

// IUsageStepUseCase is the usage-type step controller. Options a frame
// cannot carry are filtered out, so selecting them is structurally
// impossible rather than merely warned against.

type IUsageStepUseCase interface {
	View(ctx context.Context, sessionID string) (UsageStepView, error)
	Select(ctx context.Context, sessionID string, t entities.UsageType) (entities.ConfiguratorState, error)
}

type UsageStepUseCase struct {
	store IConfigurationUseCase
}

var _ IUsageStepUseCase = (*UsageStepUseCase)(nil)

func NewUsageStepUseCase(store IConfigurationUseCase) *UsageStepUseCase {
	return &UsageStepUseCase{store: store}
}

func (u *UsageStepUseCase) View(ctx context.Context, sessionID string) (UsageStepView, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return UsageStepView{}, err
	}
	return buildUsageView(state), nil
}

func buildUsageView(state entities.ConfiguratorState) UsageStepView {
	view := UsageStepView{}
	for _, t := range availableUsageTypes(state.Frame) {
		view.Options = append(view.Options, UsageOption{
			Type:                 t,
			PrescriptionRequired: t.RequiresPrescription(),
			Selected:             state.Configuration.UsageType == t,
		})
	}
	view.PrescriptionNotice = state.Configuration.UsageType.RequiresPrescription()
	return view
}

// availableUsageTypes hides every prescription-requiring option on frames
// that are sunglasses-only or cannot take graduated lenses.
func availableUsageTypes(frame *entities.Frame) []entities.UsageType {
	if frame.SupportsPrescriptionLenses() {
		return entities.AllUsageTypes
	}
	return []entities.UsageType{entities.UsageTypeNonPrescription}
}

func (u *UsageStepUseCase) Select(ctx context.Context, sessionID string, t entities.UsageType) (entities.ConfiguratorState, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	if t.RequiresPrescription() && !state.Frame.SupportsPrescriptionLenses() {
		return entities.ConfiguratorState{}, ErrUsageTypeNotAvailable
	}
	return u.store.SetUsageType(ctx, sessionID, t)
}
