package handlers

import (
	"net/http"

	request "optica_xpto/internal/adapter/http/dto/request"
	response "optica_xpto/internal/adapter/http/dto/response"
	"optica_xpto/internal/usecase"
	"optica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)

// SelectionHandler covers the single-choice steps: usage type, material,
// treatment toggles and bundles. Each submission goes through its step
// controller so option filtering is enforced server-side.

type SelectionHandler struct {
	usage     usecase.IUsageStepUseCase
	material  usecase.IMaterialStepUseCase
	treatment usecase.ITreatmentStepUseCase
}

func NewSelectionHandler(usage usecase.IUsageStepUseCase, material usecase.IMaterialStepUseCase, treatment usecase.ITreatmentStepUseCase) *SelectionHandler {
	return &SelectionHandler{usage: usage, material: material, treatment: treatment}
}

// SelectUsage godoc
// @Summary      Select the lens usage type
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  true  "Configurator session"
// @Param        payload  body  request.UsageTypeRequest  true  "Usage type"
// @Success      200  {object}  response.StateResponse
// @Router       /configurations/steps/usage [put]
func (h *SelectionHandler) SelectUsage(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.UsageTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	state, err := h.usage.Select(c.Request.Context(), session, payload.ResolveUsageType())
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

func (h *SelectionHandler) SelectMaterial(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	state, err := h.material.Select(c.Request.Context(), session, payload.MaterialID)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

func (h *SelectionHandler) ToggleTreatment(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.TreatmentToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	state, err := h.treatment.Toggle(c.Request.Context(), session, payload.TreatmentID)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

// ApplyBundle applies a curated preset atomically.
func (h *SelectionHandler) ApplyBundle(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.TreatmentBundleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	state, err := h.treatment.ApplyBundle(c.Request.Context(), session, payload.BundleID)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}
