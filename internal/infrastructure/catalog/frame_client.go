package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var (
	ErrMissingCatalogBaseURL = errors.New("missing CATALOG_BASE_URL")
	ErrFrameNotFound         = errors.New("frame not found")
)

type frameResponse struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	BasePrice               float64  `json:"base_price"`
	SunglassesOnly          bool     `json:"sunglasses_only"`
	SupportsGraduatedLenses bool     `json:"supports_graduated_lenses"`
	CompatibleLensIndexes   []string `json:"compatible_lens_indexes"`
}

// FrameClient resolves frame references against the catalog service.
//
// The catalog owns product data; this client only reads the snapshot the
// configurator needs at start time.

type FrameClient struct {
	httpClient *resty.Client
}

var _ interfaces.IFrameLookup = (*FrameClient)(nil)

func NewFrameClient() (*FrameClient, error) {
	baseURL := strings.TrimSpace(os.Getenv("CATALOG_BASE_URL"))
	if baseURL == "" {
		return nil, ErrMissingCatalogBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Accept", "application/json")

	return &FrameClient{httpClient: client}, nil
}

func (c *FrameClient) GetFrame(ctx context.Context, frameID string) (entities.Frame, error) {
	var body frameResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&body).
		SetPathParam("frame_id", frameID).
		Get("/frames/{frame_id}")
	if err != nil {
		log.Printf("[catalog][frames] request failed frame_id=%s err=%v", frameID, err)
		return entities.Frame{}, err
	}
	if resp.StatusCode() == 404 {
		return entities.Frame{}, ErrFrameNotFound
	}
	if resp.IsError() {
		return entities.Frame{}, fmt.Errorf("catalog service returned %d for frame %s", resp.StatusCode(), frameID)
	}

	return entities.Frame{
		ID:                      body.ID,
		Name:                    body.Name,
		BasePrice:               body.BasePrice,
		SunglassesOnly:          body.SunglassesOnly,
		SupportsGraduatedLenses: body.SupportsGraduatedLenses,
		CompatibleLensIndexes:   body.CompatibleLensIndexes,
	}, nil
}
