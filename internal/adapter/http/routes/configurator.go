package routes

import (
	"optica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfigurations = "/configurations"
	PathAnalysis       = "/analysis"
)

func addConfiguratorRoutes(rg *gin.RouterGroup, wizard *handlers.WizardHandler, selection *handlers.SelectionHandler, prescription *handlers.PrescriptionHandler) {
	configurations := rg.Group(PathConfigurations)
	{
		configurations.POST("", wizard.Start)
		configurations.GET("/current", wizard.Current)
		configurations.POST("/complete", wizard.Complete)
		configurations.DELETE("", wizard.Cancel)

		steps := configurations.Group("/steps")
		{
			steps.POST("/next", wizard.Next)
			steps.POST("/prev", wizard.Prev)
			steps.POST("/goto", wizard.GoTo)

			steps.PUT("/usage", selection.SelectUsage)
			steps.PUT("/material", selection.SelectMaterial)
			steps.POST("/treatments/toggle", selection.ToggleTreatment)
			steps.POST("/treatments/bundle", selection.ApplyBundle)

			steps.PUT("/prescription/source", prescription.SelectSource)
			steps.GET("/prescription/saved", prescription.ListSaved)
			steps.PUT("/prescription/saved", prescription.SelectSaved)
			steps.PUT("/prescription/manual", prescription.SubmitManual)
			steps.PUT("/prescription/upload", prescription.AttachUpload)
			steps.PUT("/prescription/appointment", prescription.LinkAppointment)
		}
	}
}

func addAnalysisRoutes(rg *gin.RouterGroup, analysis *handlers.FaceAnalysisHandler) {
	if analysis == nil {
		return
	}
	rg.POST(PathAnalysis+"/face", analysis.Analyze)
}
