package handlers

import (
	"errors"
	"net/http"
	"strings"

	"optica_xpto/internal/adapter/http/dto/request"
	"optica_xpto/internal/usecase"
	"optica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerSessionID = "X-Session-ID"
	headerUserID    = "X-User-ID"
)

var errMissingSession = pkg.NewDomainErrorSimple("MISSING_SESSION", "X-Session-ID header is required", http.StatusBadRequest)

// sessionID extracts the configurator session identity; every wizard route
// requires it.
func sessionID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(headerSessionID))
	if id == "" {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return "", false
	}
	return id, true
}

// authenticatedUser gates saved-prescription access. Token validation is the
// auth system's job; this service only needs presence plus the user claim.
func authenticatedUser(c *gin.Context) (string, bool) {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	userID := strings.TrimSpace(c.GetHeader(headerUserID))
	if !strings.HasPrefix(auth, "Bearer ") || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":      "AUTH_REQUIRED",
			"message":   "Sign in to use saved prescriptions",
			"login_url": "/login",
			"return_to": c.Request.URL.RequestURI(),
		})
		return "", false
	}
	return userID, true
}

func mapConfiguratorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidFrameID),
		errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, usecase.ErrInvalidUsageType),
		errors.Is(err, usecase.ErrInvalidSource),
		errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrPayloadSourceMismatch),
		errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, request.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "No configuration in progress for this session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFrameLookupFailed):
		return pkg.NewDomainErrorSimple("FRAME_LOOKUP_FAILED", "Frame data is unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUsageTypeNotAvailable),
		errors.Is(err, usecase.ErrMaterialNotAvailable),
		errors.Is(err, usecase.ErrTreatmentNotAvailable),
		errors.Is(err, usecase.ErrPrescriptionNotRequired):
		return pkg.NewDomainErrorSimple("OPTION_NOT_AVAILABLE", "Option not available for this configuration", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTreatmentIncompatible):
		return pkg.NewDomainErrorSimple("TREATMENT_INCOMPATIBLE", "Treatment conflicts with current selection", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTreatmentBundleUnknown):
		return pkg.NewDomainErrorSimple("BUNDLE_NOT_FOUND", "Treatment bundle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSavedPrescriptionNotFound):
		return pkg.NewDomainErrorSimple("PRESCRIPTION_NOT_FOUND", "Saved prescription not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSavedPrescriptionExpired):
		return pkg.NewDomainErrorSimple("PRESCRIPTION_EXPIRED", "Saved prescription is expired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStepsIncomplete):
		return pkg.NewDomainErrorSimple("STEPS_INCOMPLETE", "Configuration steps are incomplete", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyImage), errors.Is(err, usecase.ErrAnalysisFailed):
		return pkg.NewDomainErrorSimple("ANALYSIS_FAILED", "Face analysis failed", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
