package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"optica_xpto/internal/adapter/http/handlers/mocks"
	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSelectionHandler_SelectUsage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSelectionHandler(mocks.NewMockIUsageStepUseCase(ctrl), nil, nil)

		r := gin.New()
		r.PUT("/v1/configurations/steps/usage", h.SelectUsage)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/usage", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filtered option maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		usage := mocks.NewMockIUsageStepUseCase(ctrl)
		h := NewSelectionHandler(usage, nil, nil)

		usage.EXPECT().Select(gomock.Any(), "sess-1", entities.UsageTypeProgressive).
			Return(entities.ConfiguratorState{}, usecase.ErrUsageTypeNotAvailable)

		r := gin.New()
		r.PUT("/v1/configurations/steps/usage", h.SelectUsage)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/usage", bytes.NewBufferString(`{"usage_type":"progressive"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("selection recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		usage := mocks.NewMockIUsageStepUseCase(ctrl)
		h := NewSelectionHandler(usage, nil, nil)

		state := sampleState()
		state.Configuration.SetUsageType(entities.UsageTypeDistance, state.Configuration.CreatedAt)
		usage.EXPECT().Select(gomock.Any(), "sess-1", entities.UsageTypeDistance).Return(state, nil)

		r := gin.New()
		r.PUT("/v1/configurations/steps/usage", h.SelectUsage)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/usage", bytes.NewBufferString(`{"usage_type":"distance"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSelectionHandler_SelectMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incompatible index maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		material := mocks.NewMockIMaterialStepUseCase(ctrl)
		h := NewSelectionHandler(nil, material, nil)

		material.EXPECT().Select(gomock.Any(), "sess-1", "mat-174").
			Return(entities.ConfiguratorState{}, usecase.ErrMaterialNotAvailable)

		r := gin.New()
		r.PUT("/v1/configurations/steps/material", h.SelectMaterial)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/material", bytes.NewBufferString(`{"material_id":"mat-174"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("selection recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		material := mocks.NewMockIMaterialStepUseCase(ctrl)
		h := NewSelectionHandler(nil, material, nil)

		material.EXPECT().Select(gomock.Any(), "sess-1", "mat-156").Return(sampleState(), nil)

		r := gin.New()
		r.PUT("/v1/configurations/steps/material", h.SelectMaterial)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/material", bytes.NewBufferString(`{"material_id":"mat-156"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSelectionHandler_ToggleTreatment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflicting treatment maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		treatment := mocks.NewMockITreatmentStepUseCase(ctrl)
		h := NewSelectionHandler(nil, nil, treatment)

		treatment.EXPECT().Toggle(gomock.Any(), "sess-1", "treat-blue").
			Return(entities.ConfiguratorState{}, usecase.ErrTreatmentIncompatible)

		r := gin.New()
		r.POST("/v1/configurations/steps/treatments/toggle", h.ToggleTreatment)

		req := httptest.NewRequest(http.MethodPost, "/v1/configurations/steps/treatments/toggle", bytes.NewBufferString(`{"treatment_id":"treat-blue"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("toggle recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		treatment := mocks.NewMockITreatmentStepUseCase(ctrl)
		h := NewSelectionHandler(nil, nil, treatment)

		state := sampleState()
		state.Configuration.ToggleTreatment("treat-ar", state.Configuration.CreatedAt)
		treatment.EXPECT().Toggle(gomock.Any(), "sess-1", "treat-ar").Return(state, nil)

		r := gin.New()
		r.POST("/v1/configurations/steps/treatments/toggle", h.ToggleTreatment)

		req := httptest.NewRequest(http.MethodPost, "/v1/configurations/steps/treatments/toggle", bytes.NewBufferString(`{"treatment_id":"treat-ar"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSelectionHandler_ApplyBundle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown bundle maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		treatment := mocks.NewMockITreatmentStepUseCase(ctrl)
		h := NewSelectionHandler(nil, nil, treatment)

		treatment.EXPECT().ApplyBundle(gomock.Any(), "sess-1", "bundle-luxury").
			Return(entities.ConfiguratorState{}, usecase.ErrTreatmentBundleUnknown)

		r := gin.New()
		r.POST("/v1/configurations/steps/treatments/bundle", h.ApplyBundle)

		req := httptest.NewRequest(http.MethodPost, "/v1/configurations/steps/treatments/bundle", bytes.NewBufferString(`{"bundle_id":"bundle-luxury"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bundle applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		treatment := mocks.NewMockITreatmentStepUseCase(ctrl)
		h := NewSelectionHandler(nil, nil, treatment)

		treatment.EXPECT().ApplyBundle(gomock.Any(), "sess-1", "bundle-office").Return(sampleState(), nil)

		r := gin.New()
		r.POST("/v1/configurations/steps/treatments/bundle", h.ApplyBundle)

		req := httptest.NewRequest(http.MethodPost, "/v1/configurations/steps/treatments/bundle", bytes.NewBufferString(`{"bundle_id":"bundle-office"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
