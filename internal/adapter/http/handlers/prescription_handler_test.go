package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"optica_xpto/internal/adapter/http/handlers/mocks"
	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPrescriptionHandler_SelectSource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid source maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		step.EXPECT().SelectSource(gomock.Any(), "sess-1", entities.PrescriptionSource("telepathy")).
			Return(entities.ConfiguratorState{}, usecase.ErrInvalidSource)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/source", h.SelectSource)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/source", bytes.NewBufferString(`{"source":"telepathy"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("source recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		state := sampleState()
		state.Configuration.Prescription = &entities.PrescriptionSelection{Source: entities.PrescriptionSourceManual}
		step.EXPECT().SelectSource(gomock.Any(), "sess-1", entities.PrescriptionSourceManual).Return(state, nil)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/source", h.SelectSource)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/source", bytes.NewBufferString(`{"source":"manual"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPrescriptionHandler_ListSaved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated gets a login redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPrescriptionHandler(mocks.NewMockIPrescriptionStepUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/configurations/steps/prescription/saved", h.ListSaved)

		req := httptest.NewRequest(http.MethodGet, "/v1/configurations/steps/prescription/saved", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "AUTH_REQUIRED" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
		if body["login_url"] != "/login" {
			t.Fatalf("unexpected login_url: %v", body["login_url"])
		}
		if body["return_to"] != "/v1/configurations/steps/prescription/saved" {
			t.Fatalf("unexpected return_to: %v", body["return_to"])
		}
	})

	t.Run("bearer token without user claim is still unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPrescriptionHandler(mocks.NewMockIPrescriptionStepUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/configurations/steps/prescription/saved", h.ListSaved)

		req := httptest.NewRequest(http.MethodGet, "/v1/configurations/steps/prescription/saved", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Authorization", "Bearer token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("lists options for the authenticated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		step.EXPECT().ListSaved(gomock.Any(), "sess-1", "user-1").Return([]usecase.SavedPrescriptionOption{
			{ID: "rx-1", Label: "Dr. Silva 2026"},
			{ID: "rx-2", Label: "Dr. Silva 2024", Expired: true},
		}, nil)

		r := gin.New()
		r.GET("/v1/configurations/steps/prescription/saved", h.ListSaved)

		req := httptest.NewRequest(http.MethodGet, "/v1/configurations/steps/prescription/saved", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Authorization", "Bearer token-1")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var options []usecase.SavedPrescriptionOption
		if err := json.Unmarshal(w.Body.Bytes(), &options); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(options) != 2 || !options[1].Expired {
			t.Fatalf("unexpected options: %+v", options)
		}
	})
}

func TestPrescriptionHandler_SelectSaved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired prescription maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		step.EXPECT().SelectSaved(gomock.Any(), "sess-1", "user-1", "rx-old").
			Return(entities.ConfiguratorState{}, usecase.ErrSavedPrescriptionExpired)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/saved", h.SelectSaved)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/saved", bytes.NewBufferString(`{"saved_prescription_id":"rx-old"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Authorization", "Bearer token-1")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unknown prescription maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		step.EXPECT().SelectSaved(gomock.Any(), "sess-1", "user-1", "rx-999").
			Return(entities.ConfiguratorState{}, usecase.ErrSavedPrescriptionNotFound)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/saved", h.SelectSaved)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/saved", bytes.NewBufferString(`{"saved_prescription_id":"rx-999"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		req.Header.Set("Authorization", "Bearer token-1")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPrescriptionHandler_SubmitManual(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manualBody := `{
		"right_eye": {"sphere": -2.25, "cylinder": -0.75, "axis": 90},
		"left_eye":  {"sphere": -2.00},
		"issue_date": "2026-06-01"
	}`

	t.Run("malformed date maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPrescriptionHandler(mocks.NewMockIPrescriptionStepUseCase(ctrl))

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/manual", h.SubmitManual)

		body := `{"right_eye":{"sphere":-2.0},"left_eye":{"sphere":-2.0},"issue_date":"01/06/2026"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/manual", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected form returns 422 with field errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		fieldErrors := map[string]string{"right_eye.axis": "axis is required when cylinder is set"}
		step.EXPECT().SubmitManual(gomock.Any(), "sess-1", gomock.Any()).
			Return(sampleState(), fieldErrors, usecase.ErrManualPrescriptionRejected)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/manual", h.SubmitManual)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/manual", bytes.NewBufferString(manualBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			FieldErrors map[string]string `json:"field_errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.FieldErrors["right_eye.axis"] == "" {
			t.Fatalf("expected a field error for right_eye.axis, got %+v", body.FieldErrors)
		}
	})

	t.Run("valid form commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		step.EXPECT().SubmitManual(gomock.Any(), "sess-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, p entities.Prescription) (entities.ConfiguratorState, map[string]string, error) {
				if p.RightEye.Sphere != -2.25 {
					t.Fatalf("payload not translated, right sphere = %v", p.RightEye.Sphere)
				}
				return sampleState(), nil, nil
			})

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/manual", h.SubmitManual)

		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/manual", bytes.NewBufferString(manualBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPrescriptionHandler_AttachUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejected file returns 422 with field errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		fieldErrors := map[string]string{"content_type": "unsupported file type"}
		step.EXPECT().AttachUpload(gomock.Any(), "sess-1", "https://cdn.example/rx.gif", "image/gif", int64(1024)).
			Return(sampleState(), fieldErrors, usecase.ErrUploadRejected)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/upload", h.AttachUpload)

		body := `{"file_url":"https://cdn.example/rx.gif","content_type":"image/gif","size_bytes":1024}`
		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/upload", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("accepted file commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
		h := NewPrescriptionHandler(step)

		step.EXPECT().AttachUpload(gomock.Any(), "sess-1", "https://cdn.example/rx.pdf", "application/pdf", int64(2048)).
			Return(sampleState(), nil, nil)

		r := gin.New()
		r.PUT("/v1/configurations/steps/prescription/upload", h.AttachUpload)

		body := `{"file_url":"https://cdn.example/rx.pdf","content_type":"application/pdf","size_bytes":2048}`
		req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/upload", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPrescriptionHandler_LinkAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	step := mocks.NewMockIPrescriptionStepUseCase(ctrl)
	h := NewPrescriptionHandler(step)

	step.EXPECT().LinkAppointment(gomock.Any(), "sess-1", "apt-42").Return(sampleState(), nil)

	r := gin.New()
	r.PUT("/v1/configurations/steps/prescription/appointment", h.LinkAppointment)

	req := httptest.NewRequest(http.MethodPut, "/v1/configurations/steps/prescription/appointment", bytes.NewBufferString(`{"appointment_id":"apt-42"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
