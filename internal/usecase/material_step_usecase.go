package usecase

import (
	"context"
	"errors"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"
)

var ErrMaterialNotAvailable = errors.New("material not available for this frame")

// MaterialOption is one selectable lens material with the advisory flags
// derived from the captured prescription.
type MaterialOption struct {
	Material entities.LensMaterial `json:"material"`
	Selected bool                  `json:"selected"`
	// Recommended: at or above the index recommended for the prescription.
	Recommended bool `json:"recommended"`
	// Overkill: two or more tiers above the recommendation; thinner than the
	// prescription can justify.
	Overkill bool `json:"overkill"`
}

type MaterialStepView struct {
	Options          []MaterialOption `json:"options"`
	RecommendedIndex string           `json:"recommended_index,omitempty"`
}

// IMaterialStepUseCase is the material step controller: the catalog filtered
// to the frame's compatible indexes, flagged against the recommendation.

type IMaterialStepUseCase interface {
	View(ctx context.Context, sessionID string) (MaterialStepView, error)
	Select(ctx context.Context, sessionID, materialID string) (entities.ConfiguratorState, error)
}

type MaterialStepUseCase struct {
	store     IConfigurationUseCase
	materials interfaces.IMaterialRepository
}

var _ IMaterialStepUseCase = (*MaterialStepUseCase)(nil)

func NewMaterialStepUseCase(store IConfigurationUseCase, materials interfaces.IMaterialRepository) *MaterialStepUseCase {
	return &MaterialStepUseCase{store: store, materials: materials}
}

func (u *MaterialStepUseCase) View(ctx context.Context, sessionID string) (MaterialStepView, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return MaterialStepView{}, err
	}
	available, err := u.availableMaterials(ctx, state)
	if err != nil {
		return MaterialStepView{}, err
	}

	view := MaterialStepView{}
	if sel := state.Configuration.Prescription; sel != nil && sel.Manual != nil {
		view.RecommendedIndex = sel.Manual.RecommendedIndex()
	}
	for _, m := range available {
		opt := MaterialOption{
			Material: m,
			Selected: state.Configuration.MaterialID == m.ID,
		}
		if view.RecommendedIndex != "" {
			opt.Recommended = entities.IndexAtLeast(m.Index, view.RecommendedIndex)
			opt.Overkill = entities.IndexTier(m.Index) >= entities.IndexTier(view.RecommendedIndex)+2
		}
		view.Options = append(view.Options, opt)
	}
	return view, nil
}

func (u *MaterialStepUseCase) availableMaterials(ctx context.Context, state entities.ConfiguratorState) ([]entities.LensMaterial, error) {
	all, err := u.materials.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	var available []entities.LensMaterial
	for _, m := range all {
		if state.Frame.SupportsIndex(m.Index) {
			available = append(available, m)
		}
	}
	return available, nil
}

// Select accepts exactly one material, and only from the filtered set.
func (u *MaterialStepUseCase) Select(ctx context.Context, sessionID, materialID string) (entities.ConfiguratorState, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	material, err := u.materials.GetByID(ctx, materialID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	if material.ID == "" || !material.Active || !state.Frame.SupportsIndex(material.Index) {
		return entities.ConfiguratorState{}, ErrMaterialNotAvailable
	}
	return u.store.SetMaterial(ctx, sessionID, material.ID)
}
