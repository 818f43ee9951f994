package usecase

import (
	"context"
	"errors"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"
)

var (
	ErrEmptyImage     = errors.New("empty image")
	ErrAnalysisFailed = errors.New("face analysis failed")
)

// IFaceAnalysisUseCase exposes the one-shot face/skin classification used to
// pre-seed the frame-finder quiz. Advisory only; it never touches a
// configuration.

type IFaceAnalysisUseCase interface {
	Analyze(ctx context.Context, image []byte) (entities.FaceAnalysis, error)
}

type FaceAnalysisUseCase struct {
	analyzer interfaces.IFaceAnalyzer
}

var _ IFaceAnalysisUseCase = (*FaceAnalysisUseCase)(nil)

func NewFaceAnalysisUseCase(analyzer interfaces.IFaceAnalyzer) *FaceAnalysisUseCase {
	return &FaceAnalysisUseCase{analyzer: analyzer}
}

func (u *FaceAnalysisUseCase) Analyze(ctx context.Context, image []byte) (entities.FaceAnalysis, error) {
	if len(image) == 0 {
		return entities.FaceAnalysis{}, ErrEmptyImage
	}
	result, err := u.analyzer.Analyze(ctx, image)
	if err != nil {
		return entities.FaceAnalysis{}, errors.Join(ErrAnalysisFailed, err)
	}
	return result, nil
}
