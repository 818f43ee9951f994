package response

import "optica_xpto/internal/domain/entities"

type FaceAnalysisResponse struct {
	FaceShape string                    `json:"face_shape"`
	SkinTone  string                    `json:"skin_tone"`
	Measures  entities.FaceMeasurements `json:"measures"`
}

func FromFaceAnalysis(a entities.FaceAnalysis) FaceAnalysisResponse {
	return FaceAnalysisResponse{
		FaceShape: string(a.FaceShape),
		SkinTone:  string(a.SkinTone),
		Measures:  a.Measures,
	}
}
