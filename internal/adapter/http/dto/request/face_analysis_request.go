package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("invalid image payload")

type FaceAnalysisRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// ResolveImage decodes the frame bytes, tolerating a data-URL prefix.
func (r FaceAnalysisRequest) ResolveImage() ([]byte, error) {
	payload := r.ImageBase64
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	img, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(img) == 0 {
		return nil, ErrInvalidImage
	}
	return img, nil
}
