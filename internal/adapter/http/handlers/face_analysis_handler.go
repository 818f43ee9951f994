package handlers

import (
	"net/http"

	request "optica_xpto/internal/adapter/http/dto/request"
	response "optica_xpto/internal/adapter/http/dto/response"
	"optica_xpto/internal/usecase"
	"optica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalysisPayload = pkg.NewDomainErrorSimple("INVALID_ANALYSIS_INPUT", "Invalid analysis payload", http.StatusBadRequest)

// FaceAnalysisHandler exposes the one-shot face/skin classification used by
// the frame-finder quiz.

type FaceAnalysisHandler struct {
	usecase usecase.IFaceAnalysisUseCase
}

func NewFaceAnalysisHandler(uc usecase.IFaceAnalysisUseCase) *FaceAnalysisHandler {
	return &FaceAnalysisHandler{usecase: uc}
}

// Analyze godoc
// @Summary      Classify face shape and skin tone from a still frame
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        payload  body  request.FaceAnalysisRequest  true  "Base64 image"
// @Success      200  {object}  response.FaceAnalysisResponse
// @Router       /analysis/face [post]
func (h *FaceAnalysisHandler) Analyze(c *gin.Context) {
	var payload request.FaceAnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}
	img, err := payload.ResolveImage()
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Analyze(c.Request.Context(), img)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFaceAnalysis(result))
}
