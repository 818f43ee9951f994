package usecase

import (
	"context"
	"errors"
	"testing"

	"optica_xpto/internal/domain/entities"
)

// seedSunglassesStore seeds a configuration for a frame that cannot take
// graduated lenses.
func seedSunglassesStore(t *testing.T) *ConfigurationUseCase {
	t.Helper()
	uc, repo := seedStore(t)
	state := repo.states[testSessionID]
	state.Frame = &entities.Frame{
		ID:             "frame-sun",
		Name:           "Beach Shield",
		BasePrice:      60,
		SunglassesOnly: true,
	}
	repo.states[testSessionID] = state
	return uc
}

func TestUsageStepUseCase_View(t *testing.T) {
	t.Run("graduated frame offers every usage type", func(t *testing.T) {
		store, _ := seedStore(t)
		uc := NewUsageStepUseCase(store)

		view, err := uc.View(context.Background(), testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Options) != len(entities.AllUsageTypes) {
			t.Fatalf("expected %d options, got %d", len(entities.AllUsageTypes), len(view.Options))
		}
		if view.PrescriptionNotice {
			t.Fatalf("expected no notice before a selection")
		}
	})

	t.Run("sunglasses frame offers only non prescription", func(t *testing.T) {
		uc := NewUsageStepUseCase(seedSunglassesStore(t))

		view, err := uc.View(context.Background(), testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Options) != 1 || view.Options[0].Type != entities.UsageTypeNonPrescription {
			t.Fatalf("unexpected options: %+v", view.Options)
		}
	})

	t.Run("notice appears once a graduated usage is selected", func(t *testing.T) {
		store, _ := seedStore(t)
		uc := NewUsageStepUseCase(store)
		if _, err := uc.Select(context.Background(), testSessionID, entities.UsageTypeProgressive); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view, err := uc.View(context.Background(), testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.PrescriptionNotice {
			t.Fatalf("expected prescription notice")
		}
	})
}

func TestUsageStepUseCase_Select(t *testing.T) {
	t.Run("graduated usage refused on sunglasses frame", func(t *testing.T) {
		uc := NewUsageStepUseCase(seedSunglassesStore(t))
		_, err := uc.Select(context.Background(), testSessionID, entities.UsageTypeDistance)
		if !errors.Is(err, ErrUsageTypeNotAvailable) {
			t.Fatalf("expected ErrUsageTypeNotAvailable, got %v", err)
		}
	})

	t.Run("non prescription is always selectable", func(t *testing.T) {
		uc := NewUsageStepUseCase(seedSunglassesStore(t))
		state, err := uc.Select(context.Background(), testSessionID, entities.UsageTypeNonPrescription)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Configuration.UsageType != entities.UsageTypeNonPrescription {
			t.Fatalf("expected selection recorded, got %s", state.Configuration.UsageType)
		}
	})
}
