package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"optica_xpto/internal/adapter/http/handlers/mocks"
	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFaceAnalysisHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)

	frame := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	encoded := base64.StdEncoding.EncodeToString(frame)

	t.Run("garbage base64 maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewFaceAnalysisHandler(mocks.NewMockIFaceAnalysisUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/analysis/face", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/face", bytes.NewBufferString(`{"image_base64":"%%%not-base64%%%"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFaceAnalysisUseCase(ctrl)
		h := NewFaceAnalysisHandler(uc)

		uc.EXPECT().Analyze(gomock.Any(), frame).Return(entities.FaceAnalysis{}, usecase.ErrAnalysisFailed)

		r := gin.New()
		r.POST("/v1/analysis/face", h.Analyze)

		body := fmt.Sprintf(`{"image_base64":%q}`, encoded)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/face", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("data URL prefix is stripped before analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFaceAnalysisUseCase(ctrl)
		h := NewFaceAnalysisHandler(uc)

		uc.EXPECT().Analyze(gomock.Any(), frame).Return(entities.FaceAnalysis{
			FaceShape: entities.FaceShapeOval,
			SkinTone:  entities.SkinToneLight,
		}, nil)

		r := gin.New()
		r.POST("/v1/analysis/face", h.Analyze)

		body := fmt.Sprintf(`{"image_base64":"data:image/jpeg;base64,%s"}`, encoded)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/face", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["face_shape"] != "oval" || res["skin_tone"] != "light" {
			t.Fatalf("unexpected classification: %v", res)
		}
	})
}
