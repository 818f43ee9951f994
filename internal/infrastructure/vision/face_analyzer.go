package vision

import (
	"context"
	"errors"
	"log"
	"math"
	"os"
	"strings"
	"time"

	gcvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"
)

var (
	ErrNoFaceDetected = errors.New("no face detected")
)

// FaceAnalyzer classifies face shape and skin tone from a single still
// frame. Landmark detection is delegated to the Vision API; the
// classification itself is the ratio arithmetic in the entities package.
//
// Mock mode (FACE_ANALYZER_MOCK=1) returns a fixed plausible result so the
// service runs without GCP credentials in local setups.

type FaceAnalyzer struct {
	client   *gcvision.ImageAnnotatorClient
	mockMode bool
}

var _ interfaces.IFaceAnalyzer = (*FaceAnalyzer)(nil)

func NewFaceAnalyzer() (*FaceAnalyzer, error) {
	if isFaceAnalyzerMockEnabled() {
		log.Printf("[vision][analyzer] mock mode enabled")
		return &FaceAnalyzer{mockMode: true}, nil
	}

	client, err := gcvision.NewImageAnnotatorClient(context.Background())
	if err != nil {
		log.Printf("[vision][analyzer] failed creating client err=%v", err)
		return nil, err
	}
	log.Printf("[vision][analyzer] Vision client initialized")
	return &FaceAnalyzer{client: client}, nil
}

func (a *FaceAnalyzer) Close() error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Close()
}

func (a *FaceAnalyzer) Analyze(ctx context.Context, image []byte) (entities.FaceAnalysis, error) {
	if a.mockMode {
		m := entities.FaceMeasurements{
			ForeheadWidth: 0.92,
			CheekWidth:    1.0,
			JawWidth:      0.85,
			FaceLength:    1.3,
			JawAngleDeg:   62,
		}
		return entities.FaceAnalysis{
			FaceShape: entities.ClassifyFaceShape(m),
			SkinTone:  entities.SkinToneMedium,
			Measures:  m,
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	batchResp, err := a.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{
				{Type: visionpb.Feature_FACE_DETECTION, MaxResults: 1},
				{Type: visionpb.Feature_IMAGE_PROPERTIES},
			},
		}},
	})
	if err != nil {
		return entities.FaceAnalysis{}, err
	}
	if len(batchResp.Responses) == 0 {
		return entities.FaceAnalysis{}, ErrNoFaceDetected
	}
	resp := batchResp.Responses[0]
	if len(resp.FaceAnnotations) == 0 {
		return entities.FaceAnalysis{}, ErrNoFaceDetected
	}

	measures, err := measurementsFromLandmarks(resp.FaceAnnotations[0].Landmarks)
	if err != nil {
		return entities.FaceAnalysis{}, err
	}

	analysis := entities.FaceAnalysis{
		FaceShape: entities.ClassifyFaceShape(measures),
		SkinTone:  skinToneFromProperties(resp.ImagePropertiesAnnotation),
		Measures:  measures,
	}
	return analysis, nil
}

// measurementsFromLandmarks turns the landmark positions into the
// normalized distances the classifier expects. Widths normalize against the
// cheek width so the ratios are camera-distance independent.
func measurementsFromLandmarks(landmarks []*visionpb.FaceAnnotation_Landmark) (entities.FaceMeasurements, error) {
	pos := map[visionpb.FaceAnnotation_Landmark_Type]*visionpb.Position{}
	for _, lm := range landmarks {
		pos[lm.Type] = lm.Position
	}

	required := []visionpb.FaceAnnotation_Landmark_Type{
		visionpb.FaceAnnotation_Landmark_FOREHEAD_GLABELLA,
		visionpb.FaceAnnotation_Landmark_CHIN_GNATHION,
		visionpb.FaceAnnotation_Landmark_CHIN_LEFT_GONION,
		visionpb.FaceAnnotation_Landmark_CHIN_RIGHT_GONION,
		visionpb.FaceAnnotation_Landmark_LEFT_EAR_TRAGION,
		visionpb.FaceAnnotation_Landmark_RIGHT_EAR_TRAGION,
		visionpb.FaceAnnotation_Landmark_LEFT_OF_LEFT_EYEBROW,
		visionpb.FaceAnnotation_Landmark_RIGHT_OF_RIGHT_EYEBROW,
	}
	for _, t := range required {
		if pos[t] == nil {
			return entities.FaceMeasurements{}, ErrNoFaceDetected
		}
	}

	cheek := dist(pos[visionpb.FaceAnnotation_Landmark_LEFT_EAR_TRAGION], pos[visionpb.FaceAnnotation_Landmark_RIGHT_EAR_TRAGION])
	if cheek == 0 {
		return entities.FaceMeasurements{}, ErrNoFaceDetected
	}

	leftGonion := pos[visionpb.FaceAnnotation_Landmark_CHIN_LEFT_GONION]
	rightGonion := pos[visionpb.FaceAnnotation_Landmark_CHIN_RIGHT_GONION]
	chin := pos[visionpb.FaceAnnotation_Landmark_CHIN_GNATHION]

	leftAngle := angleDeg(leftGonion, pos[visionpb.FaceAnnotation_Landmark_LEFT_EAR_TRAGION], chin)
	rightAngle := angleDeg(rightGonion, pos[visionpb.FaceAnnotation_Landmark_RIGHT_EAR_TRAGION], chin)

	return entities.FaceMeasurements{
		ForeheadWidth: dist(pos[visionpb.FaceAnnotation_Landmark_LEFT_OF_LEFT_EYEBROW], pos[visionpb.FaceAnnotation_Landmark_RIGHT_OF_RIGHT_EYEBROW]) / cheek,
		CheekWidth:    1.0,
		JawWidth:      dist(leftGonion, rightGonion) / cheek,
		FaceLength:    dist(pos[visionpb.FaceAnnotation_Landmark_FOREHEAD_GLABELLA], chin) / cheek,
		JawAngleDeg:   (leftAngle + rightAngle) / 2,
	}, nil
}

func dist(a, b *visionpb.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

// angleDeg is the angle at vertex between the rays to a and b, in degrees.
func angleDeg(vertex, a, b *visionpb.Position) float64 {
	ax := float64(a.X - vertex.X)
	ay := float64(a.Y - vertex.Y)
	bx := float64(b.X - vertex.X)
	by := float64(b.Y - vertex.Y)
	na := math.Hypot(ax, ay)
	nb := math.Hypot(bx, by)
	if na == 0 || nb == 0 {
		return 0
	}
	cos := (ax*bx + ay*by) / (na * nb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// skinToneFromProperties buckets the color covering the largest pixel
// fraction of the frame.
func skinToneFromProperties(props *visionpb.ImageProperties) entities.SkinTone {
	if props == nil || props.DominantColors == nil || len(props.DominantColors.Colors) == 0 {
		return entities.SkinToneMedium
	}
	best := props.DominantColors.Colors[0]
	for _, c := range props.DominantColors.Colors[1:] {
		if c.PixelFraction > best.PixelFraction {
			best = c
		}
	}
	if best.Color == nil {
		return entities.SkinToneMedium
	}
	return entities.ClassifySkinTone(float64(best.Color.GetRed()), float64(best.Color.GetGreen()), float64(best.Color.GetBlue()))
}

func isFaceAnalyzerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("FACE_ANALYZER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
