package interfaces

import (
	"context"

	"optica_xpto/internal/domain/entities"
)

// IMaterialRepository reads the lens-material reference table. The
// configurator never mutates catalog data.

type IMaterialRepository interface {
	ListActive(ctx context.Context) ([]entities.LensMaterial, error)
	GetByID(ctx context.Context, id string) (entities.LensMaterial, error)
}

// ITreatmentRepository reads the treatment reference table, compatibility
// metadata included.

type ITreatmentRepository interface {
	ListActive(ctx context.Context) ([]entities.Treatment, error)
	GetByID(ctx context.Context, id string) (entities.Treatment, error)
}

// ISavedPrescriptionRepository reads the customer's stored prescriptions for
// the saved capture mode.

type ISavedPrescriptionRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]entities.SavedPrescription, error)
	GetByID(ctx context.Context, id string) (entities.SavedPrescription, error)
}
