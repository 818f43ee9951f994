package handlers

import (
	"errors"
	"net/http"

	request "optica_xpto/internal/adapter/http/dto/request"
	response "optica_xpto/internal/adapter/http/dto/response"
	"optica_xpto/internal/usecase"
	"optica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPrescriptionPayload = pkg.NewDomainErrorSimple("INVALID_PRESCRIPTION_INPUT", "Invalid prescription payload", http.StatusBadRequest)

// PrescriptionHandler covers the four capture modes of the prescription
// step. The saved mode is authentication-gated: unauthenticated calls get a
// login redirect, not an error.

type PrescriptionHandler struct {
	step usecase.IPrescriptionStepUseCase
}

func NewPrescriptionHandler(step usecase.IPrescriptionStepUseCase) *PrescriptionHandler {
	return &PrescriptionHandler{step: step}
}

func (h *PrescriptionHandler) SelectSource(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.PrescriptionSourceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrescriptionPayload.HTTPStatus, errInvalidPrescriptionPayload.ToHTTPError())
		return
	}

	state, err := h.step.SelectSource(c.Request.Context(), session, payload.ResolveSource())
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

// ListSaved godoc
// @Summary      List the customer's saved prescriptions
// @Tags         configurator
// @Produce      json
// @Param        X-Session-ID  header  string  true  "Configurator session"
// @Security     Bearer
// @Success      200  {array}  usecase.SavedPrescriptionOption
// @Router       /configurations/steps/prescription/saved [get]
func (h *PrescriptionHandler) ListSaved(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	options, err := h.step.ListSaved(c.Request.Context(), session, userID)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *PrescriptionHandler) SelectSaved(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	var payload request.SavedPrescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrescriptionPayload.HTTPStatus, errInvalidPrescriptionPayload.ToHTTPError())
		return
	}

	state, err := h.step.SelectSaved(c.Request.Context(), session, userID, payload.SavedPrescriptionID)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

// SubmitManual validates the whole form atomically. A rejected submission
// returns the per-field errors and commits nothing.
func (h *PrescriptionHandler) SubmitManual(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.ManualPrescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrescriptionPayload.HTTPStatus, errInvalidPrescriptionPayload.ToHTTPError())
		return
	}
	prescription, err := payload.ToPrescription()
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, fieldErrors, err := h.step.SubmitManual(c.Request.Context(), session, prescription)
	if err != nil {
		if errors.Is(err, usecase.ErrManualPrescriptionRejected) {
			res := response.FromState(state)
			res.FieldErrors = fieldErrors
			c.JSON(http.StatusUnprocessableEntity, res)
			return
		}
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

func (h *PrescriptionHandler) AttachUpload(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.UploadPrescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrescriptionPayload.HTTPStatus, errInvalidPrescriptionPayload.ToHTTPError())
		return
	}

	state, fieldErrors, err := h.step.AttachUpload(c.Request.Context(), session, payload.FileURL, payload.ContentType, payload.SizeBytes)
	if err != nil {
		if errors.Is(err, usecase.ErrUploadRejected) {
			res := response.FromState(state)
			res.FieldErrors = fieldErrors
			c.JSON(http.StatusUnprocessableEntity, res)
			return
		}
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

func (h *PrescriptionHandler) LinkAppointment(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrescriptionPayload.HTTPStatus, errInvalidPrescriptionPayload.ToHTTPError())
		return
	}

	state, err := h.step.LinkAppointment(c.Request.Context(), session, payload.AppointmentID)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}
