package usecase

import (
	"context"
	"errors"
	"log"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"
)

var (
	ErrTreatmentNotAvailable  = errors.New("treatment not available for this configuration")
	ErrTreatmentIncompatible  = errors.New("treatment incompatible with current selection")
	ErrTreatmentBundleUnknown = errors.New("unknown treatment bundle")
)

// TreatmentOption is one visible treatment. Disabled options render as
// disabled checkboxes: selecting them is refused until the conflicting
// treatment is removed.
type TreatmentOption struct {
	Treatment     entities.Treatment `json:"treatment"`
	Selected      bool               `json:"selected"`
	Disabled      bool               `json:"disabled"`
	ConflictsWith string             `json:"conflicts_with,omitempty"`
}

type TreatmentCategory struct {
	Category string            `json:"category"`
	Options  []TreatmentOption `json:"options"`
}

type TreatmentStepView struct {
	Categories []TreatmentCategory        `json:"categories"`
	Bundles    []entities.TreatmentBundle `json:"bundles"`
	Selected   []string                   `json:"selected"`
}

// ITreatmentStepUseCase is the treatments step controller. Treatments
// excluded for the usage type or requiring another material are hidden;
// pairwise incompatibility disables candidates while the conflict stands.
// Bundles apply atomically and skip the per-item incompatibility check,
// which is why they are asserted consistent at startup.

type ITreatmentStepUseCase interface {
	View(ctx context.Context, sessionID string) (TreatmentStepView, error)
	Toggle(ctx context.Context, sessionID, treatmentID string) (entities.ConfiguratorState, error)
	ApplyBundle(ctx context.Context, sessionID, bundleID string) (entities.ConfiguratorState, error)
}

type TreatmentStepUseCase struct {
	store      IConfigurationUseCase
	treatments interfaces.ITreatmentRepository
	bundles    []entities.TreatmentBundle
}

var _ ITreatmentStepUseCase = (*TreatmentStepUseCase)(nil)

func NewTreatmentStepUseCase(store IConfigurationUseCase, treatments interfaces.ITreatmentRepository, bundles []entities.TreatmentBundle) *TreatmentStepUseCase {
	return &TreatmentStepUseCase{store: store, treatments: treatments, bundles: bundles}
}

func (u *TreatmentStepUseCase) View(ctx context.Context, sessionID string) (TreatmentStepView, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return TreatmentStepView{}, err
	}
	visible, err := u.visibleTreatments(ctx, state)
	if err != nil {
		return TreatmentStepView{}, err
	}

	view := TreatmentStepView{
		Bundles:  u.bundles,
		Selected: state.Configuration.TreatmentIDs,
	}
	byCategory := map[string]int{}
	for _, t := range visible {
		opt := TreatmentOption{
			Treatment: t,
			Selected:  state.Configuration.HasTreatment(t.ID),
		}
		if !opt.Selected {
			if conflict := firstConflict(t, visible, state.Configuration); conflict != "" {
				opt.Disabled = true
				opt.ConflictsWith = conflict
			}
		}
		idx, ok := byCategory[t.Category]
		if !ok {
			view.Categories = append(view.Categories, TreatmentCategory{Category: t.Category})
			idx = len(view.Categories) - 1
			byCategory[t.Category] = idx
		}
		view.Categories[idx].Options = append(view.Categories[idx].Options, opt)
	}
	return view, nil
}

// visibleTreatments applies the two hiding rules: usage-type exclusion and
// material allow-list.
func (u *TreatmentStepUseCase) visibleTreatments(ctx context.Context, state entities.ConfiguratorState) ([]entities.Treatment, error) {
	all, err := u.treatments.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	var visible []entities.Treatment
	for _, t := range all {
		if t.ExcludedForUsage(state.Configuration.UsageType) {
			continue
		}
		if !t.AllowedForMaterial(state.Configuration.MaterialID) {
			continue
		}
		visible = append(visible, t)
	}
	return visible, nil
}

func firstConflict(candidate entities.Treatment, visible []entities.Treatment, cfg *entities.Configuration) string {
	for _, other := range visible {
		if !cfg.HasTreatment(other.ID) {
			continue
		}
		if candidate.IncompatibleWithID(other.ID) || other.IncompatibleWithID(candidate.ID) {
			return other.ID
		}
	}
	return ""
}

// Toggle adds or removes one treatment. Adding a candidate that conflicts
// with an already-selected treatment is refused; the selection stands.
func (u *TreatmentStepUseCase) Toggle(ctx context.Context, sessionID, treatmentID string) (entities.ConfiguratorState, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}

	// Removing an already-selected treatment needs no checks.
	if state.Configuration.HasTreatment(treatmentID) {
		return u.store.ToggleTreatment(ctx, sessionID, treatmentID)
	}

	visible, err := u.visibleTreatments(ctx, state)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	var candidate *entities.Treatment
	for i := range visible {
		if visible[i].ID == treatmentID {
			candidate = &visible[i]
			break
		}
	}
	if candidate == nil {
		return entities.ConfiguratorState{}, ErrTreatmentNotAvailable
	}
	if conflict := firstConflict(*candidate, visible, state.Configuration); conflict != "" {
		log.Printf("[treatments][toggle] refused incompatible session=%s candidate=%s conflict=%s", sessionID, treatmentID, conflict)
		return entities.ConfiguratorState{}, ErrTreatmentIncompatible
	}
	return u.store.ToggleTreatment(ctx, sessionID, treatmentID)
}

// ApplyBundle replaces the selection with a curated preset in one atomic
// store call. Bundle contents are validated against the incompatibility
// table at startup, not here.
func (u *TreatmentStepUseCase) ApplyBundle(ctx context.Context, sessionID, bundleID string) (entities.ConfiguratorState, error) {
	for _, b := range u.bundles {
		if b.ID == bundleID {
			return u.store.SetTreatments(ctx, sessionID, b.TreatmentIDs)
		}
	}
	return entities.ConfiguratorState{}, ErrTreatmentBundleUnknown
}
