package handlers

import (
	"net/http"

	request "optica_xpto/internal/adapter/http/dto/request"
	response "optica_xpto/internal/adapter/http/dto/response"
	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase"
	"optica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)

// WizardHandler exposes the configurator orchestration: starting a
// configuration, rendering the current step and navigating. The step query
// parameter is the URL contract; illegal deep links come back corrected in
// resolved_step.

type WizardHandler struct {
	wizard usecase.IWizardUseCase
	store  usecase.IConfigurationUseCase
	review usecase.IReviewStepUseCase
}

func NewWizardHandler(wizard usecase.IWizardUseCase, store usecase.IConfigurationUseCase, review usecase.IReviewStepUseCase) *WizardHandler {
	return &WizardHandler{wizard: wizard, store: store, review: review}
}

// Start godoc
// @Summary      Start a lens configuration for a frame
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  true  "Configurator session"
// @Param        payload  body  request.StartConfigurationRequest  true  "Frame"
// @Success      201  {object}  response.WizardViewResponse
// @Router       /configurations [post]
func (h *WizardHandler) Start(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.StartConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	view, err := h.wizard.Start(c.Request.Context(), session, payload.ResolveFrameID())
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardView(view))
}

// Current godoc
// @Summary      Render the current (or requested) wizard step
// @Tags         configurator
// @Produce      json
// @Param        X-Session-ID  header  string  true  "Configurator session"
// @Param        step  query  string  false  "Requested step"
// @Success      200  {object}  response.WizardViewResponse
// @Router       /configurations/current [get]
func (h *WizardHandler) Current(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	requested := entities.Step(c.Query("step"))

	view, err := h.wizard.Current(c.Request.Context(), session, requested)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

func (h *WizardHandler) Next(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	view, advanced, err := h.wizard.Next(c.Request.Context(), session)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	res := response.FromWizardView(view)
	res.Advanced = &advanced
	c.JSON(http.StatusOK, res)
}

func (h *WizardHandler) Prev(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.wizard.Prev(c.Request.Context(), session)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// GoTo navigates to an already-reachable step. A refused jump is not an
// error; the response simply shows the unchanged step.
func (h *WizardHandler) GoTo(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var payload request.GoToStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	if _, err := h.store.GoToStep(c.Request.Context(), session, payload.ResolveStep()); err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	view, err := h.wizard.Current(c.Request.Context(), session, "")
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// Complete godoc
// @Summary      Finalize the configuration for cart hand-off
// @Tags         configurator
// @Produce      json
// @Param        X-Session-ID  header  string  true  "Configurator session"
// @Success      200  {object}  response.StateResponse
// @Router       /configurations/complete [post]
func (h *WizardHandler) Complete(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	state, err := h.review.Complete(c.Request.Context(), session)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(state))
}

// Cancel discards the in-flight configuration. Unconditional; there is
// nothing committed anywhere to unwind.
func (h *WizardHandler) Cancel(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.wizard.Cancel(c.Request.Context(), session); err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
