package entities

// FaceShape is the landmark-geometry classification used to pre-seed the
// frame-finder quiz. Advisory signal only; never written into a Configuration.

type FaceShape string

const (
	FaceShapeOval    FaceShape = "oval"
	FaceShapeRound   FaceShape = "round"
	FaceShapeSquare  FaceShape = "square"
	FaceShapeHeart   FaceShape = "heart"
	FaceShapeOblong  FaceShape = "oblong"
	FaceShapeDiamond FaceShape = "diamond"
)

type SkinTone string

const (
	SkinToneLight  SkinTone = "light"
	SkinToneMedium SkinTone = "medium"
	SkinToneDeep   SkinTone = "deep"
)

// FaceMeasurements are the normalized distances extracted from detected
// landmarks: all widths are ratios against face length, jaw angle in degrees.

type FaceMeasurements struct {
	ForeheadWidth float64 `json:"forehead_width"`
	CheekWidth    float64 `json:"cheek_width"`
	JawWidth      float64 `json:"jaw_width"`
	FaceLength    float64 `json:"face_length"`
	JawAngleDeg   float64 `json:"jaw_angle_deg"`
}

type FaceAnalysis struct {
	FaceShape FaceShape        `json:"face_shape"`
	SkinTone  SkinTone         `json:"skin_tone"`
	Measures  FaceMeasurements `json:"measures"`
}

// ClassifyFaceShape applies the ratio thresholds over normalized measurements.
// Order matters: the more distinctive silhouettes are ruled out first and
// oval is the fallback.
func ClassifyFaceShape(m FaceMeasurements) FaceShape {
	if m.FaceLength <= 0 {
		return FaceShapeOval
	}
	lengthRatio := m.FaceLength / m.CheekWidth

	switch {
	case lengthRatio >= 1.5:
		return FaceShapeOblong
	case m.CheekWidth > m.ForeheadWidth*1.1 && m.CheekWidth > m.JawWidth*1.1:
		return FaceShapeDiamond
	case m.ForeheadWidth > m.JawWidth*1.15:
		return FaceShapeHeart
	case m.JawWidth >= m.CheekWidth*0.9 && m.JawAngleDeg < 50:
		return FaceShapeSquare
	case lengthRatio <= 1.15:
		return FaceShapeRound
	default:
		return FaceShapeOval
	}
}

// ClassifySkinTone buckets the dominant skin color by perceptual luminance
// (Rec. 601 weights), channels in 0..255.
func ClassifySkinTone(r, g, b float64) SkinTone {
	luma := 0.299*r + 0.587*g + 0.114*b
	switch {
	case luma >= 170:
		return SkinToneLight
	case luma >= 105:
		return SkinToneMedium
	default:
		return SkinToneDeep
	}
}
