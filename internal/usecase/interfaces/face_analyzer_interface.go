package interfaces

import (
	"context"

	"optica_xpto/internal/domain/entities"
)

// IFaceAnalyzer is the face/skin analysis collaborator: one still frame in,
// one classification out. Backed by an async model inference call but
// synchronous from the caller's point of view.

type IFaceAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (entities.FaceAnalysis, error)
}
