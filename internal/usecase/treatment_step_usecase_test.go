package usecase

import (
	"context"
	"errors"
	"testing"

	"optica_xpto/internal/domain/entities"
	mock_interfaces "optica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func treatmentCatalog() []entities.Treatment {
	return []entities.Treatment{
		{ID: "treat-ar", Name: "Anti-reflective", Category: "coating", Price: 30, Active: true},
		{ID: "treat-scratch", Name: "Scratch-resistant", Category: "coating", Price: 20, Active: true},
		{ID: "treat-blue", Name: "Blue light filter", Category: "filter", Price: 35, Active: true, IncompatibleWith: []string{"treat-photo"}},
		{
			ID: "treat-photo", Name: "Photochromic", Category: "filter", Price: 80, Active: true,
			ExcludedUsageTypes: []entities.UsageType{entities.UsageTypeNonPrescription},
			IncompatibleWith:   []string{"treat-blue"},
		},
		{
			ID: "treat-premium", Name: "Premium hard coat", Category: "coating", Price: 50, Active: true,
			RequiredMaterials: []string{"mat-167"},
		},
	}
}

func newTreatmentStep(t *testing.T) (*TreatmentStepUseCase, *ConfigurationUseCase, *mock_interfaces.MockITreatmentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	treatments := mock_interfaces.NewMockITreatmentRepository(ctrl)
	store, _ := seedStore(t)
	if _, err := store.SetUsageType(context.Background(), testSessionID, entities.UsageTypeDistance); err != nil {
		t.Fatalf("seed usage: %v", err)
	}
	uc := NewTreatmentStepUseCase(store, treatments, entities.DefaultTreatmentBundles)
	return uc, store, treatments
}

func TestTreatmentStepUseCase_View(t *testing.T) {
	t.Run("usage exclusion and material allow-list hide options", func(t *testing.T) {
		uc, store, treatments := newTreatmentStep(t)
		ctx := context.Background()
		if _, err := store.SetUsageType(ctx, testSessionID, entities.UsageTypeNonPrescription); err != nil {
			t.Fatalf("seed usage: %v", err)
		}
		if _, err := store.SetMaterial(ctx, testSessionID, "mat-156"); err != nil {
			t.Fatalf("seed material: %v", err)
		}

		treatments.EXPECT().ListActive(gomock.Any()).Return(treatmentCatalog(), nil)

		view, err := uc.View(ctx, testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen := map[string]bool{}
		for _, cat := range view.Categories {
			for _, opt := range cat.Options {
				seen[opt.Treatment.ID] = true
			}
		}
		// photo is excluded for non_prescription, premium requires mat-167.
		if seen["treat-photo"] || seen["treat-premium"] {
			t.Fatalf("expected hidden options, got %v", seen)
		}
		if !seen["treat-ar"] || !seen["treat-blue"] {
			t.Fatalf("expected visible options, got %v", seen)
		}
	})

	t.Run("selected conflict disables the counterpart", func(t *testing.T) {
		uc, store, treatments := newTreatmentStep(t)
		ctx := context.Background()
		if _, err := store.ToggleTreatment(ctx, testSessionID, "treat-photo"); err != nil {
			t.Fatalf("seed selection: %v", err)
		}

		treatments.EXPECT().ListActive(gomock.Any()).Return(treatmentCatalog(), nil)

		view, err := uc.View(ctx, testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var blue *TreatmentOption
		for i, cat := range view.Categories {
			for j, opt := range cat.Options {
				if opt.Treatment.ID == "treat-blue" {
					blue = &view.Categories[i].Options[j]
				}
			}
		}
		if blue == nil {
			t.Fatalf("expected treat-blue visible")
		}
		if !blue.Disabled || blue.ConflictsWith != "treat-photo" {
			t.Fatalf("unexpected option: %+v", blue)
		}
	})
}

func TestTreatmentStepUseCase_Toggle(t *testing.T) {
	t.Run("unknown treatment", func(t *testing.T) {
		uc, _, treatments := newTreatmentStep(t)
		treatments.EXPECT().ListActive(gomock.Any()).Return(treatmentCatalog(), nil)

		_, err := uc.Toggle(context.Background(), testSessionID, "treat-nope")
		if !errors.Is(err, ErrTreatmentNotAvailable) {
			t.Fatalf("expected ErrTreatmentNotAvailable, got %v", err)
		}
	})

	t.Run("adding a conflicting treatment is refused", func(t *testing.T) {
		uc, store, treatments := newTreatmentStep(t)
		ctx := context.Background()
		if _, err := store.ToggleTreatment(ctx, testSessionID, "treat-photo"); err != nil {
			t.Fatalf("seed selection: %v", err)
		}
		treatments.EXPECT().ListActive(gomock.Any()).Return(treatmentCatalog(), nil)

		_, err := uc.Toggle(ctx, testSessionID, "treat-blue")
		if !errors.Is(err, ErrTreatmentIncompatible) {
			t.Fatalf("expected ErrTreatmentIncompatible, got %v", err)
		}

		state, err := store.Get(ctx, testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.Configuration.HasTreatment("treat-photo") || state.Configuration.HasTreatment("treat-blue") {
			t.Fatalf("expected selection unchanged, got %v", state.Configuration.TreatmentIDs)
		}
	})

	t.Run("removal needs no checks", func(t *testing.T) {
		uc, store, _ := newTreatmentStep(t)
		ctx := context.Background()
		if _, err := store.ToggleTreatment(ctx, testSessionID, "treat-photo"); err != nil {
			t.Fatalf("seed selection: %v", err)
		}

		state, err := uc.Toggle(ctx, testSessionID, "treat-photo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Configuration.HasTreatment("treat-photo") {
			t.Fatalf("expected removal")
		}
	})

	t.Run("compatible addition succeeds", func(t *testing.T) {
		uc, _, treatments := newTreatmentStep(t)
		treatments.EXPECT().ListActive(gomock.Any()).Return(treatmentCatalog(), nil)

		state, err := uc.Toggle(context.Background(), testSessionID, "treat-ar")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.Configuration.HasTreatment("treat-ar") {
			t.Fatalf("expected treatment added")
		}
	})
}

func TestTreatmentStepUseCase_ApplyBundle(t *testing.T) {
	t.Run("unknown bundle", func(t *testing.T) {
		uc, _, _ := newTreatmentStep(t)
		_, err := uc.ApplyBundle(context.Background(), testSessionID, "bundle-nope")
		if !errors.Is(err, ErrTreatmentBundleUnknown) {
			t.Fatalf("expected ErrTreatmentBundleUnknown, got %v", err)
		}
	})

	t.Run("bundle replaces the selection atomically", func(t *testing.T) {
		uc, store, _ := newTreatmentStep(t)
		ctx := context.Background()
		if _, err := store.ToggleTreatment(ctx, testSessionID, "treat-photo"); err != nil {
			t.Fatalf("seed selection: %v", err)
		}

		state, err := uc.ApplyBundle(ctx, testSessionID, "bundle-office")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]bool{"treat-ar": true, "treat-scratch": true, "treat-blue": true}
		if len(state.Configuration.TreatmentIDs) != len(want) {
			t.Fatalf("unexpected selection: %v", state.Configuration.TreatmentIDs)
		}
		for _, id := range state.Configuration.TreatmentIDs {
			if !want[id] {
				t.Fatalf("unexpected treatment %s", id)
			}
		}
	})
}
