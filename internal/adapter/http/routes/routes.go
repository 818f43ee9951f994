package routes

import (
	"context"
	"log"
	_ "optica_xpto/docs" // This will be auto-generated
	"optica_xpto/internal/adapter/http/handlers"
	repository2 "optica_xpto/internal/adapter/persistence/repository"
	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/infrastructure/catalog"
	"optica_xpto/internal/infrastructure/database"
	"optica_xpto/internal/infrastructure/vision"
	"optica_xpto/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := database.ConnectRedis()

	stateRepo := repository2.NewConfiguratorStateRedisRepository(rdb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)
	treatmentRepo := repository2.NewTreatmentDynamoRepository(ddb)
	savedPrescriptionRepo := repository2.NewSavedPrescriptionDynamoRepository(ddb)

	frameClient, err := catalog.NewFrameClient()
	if err != nil {
		log.Fatalf("Catalog client not configured: %v", err)
	}

	assertBundlesConsistent(treatmentRepo)

	store := usecase.NewConfigurationUseCase(stateRepo, frameClient)
	usageStep := usecase.NewUsageStepUseCase(store)
	prescriptionStep := usecase.NewPrescriptionStepUseCase(store, savedPrescriptionRepo)
	materialStep := usecase.NewMaterialStepUseCase(store, materialRepo)
	treatmentStep := usecase.NewTreatmentStepUseCase(store, treatmentRepo, entities.DefaultTreatmentBundles)
	reviewStep := usecase.NewReviewStepUseCase(store, materialRepo, treatmentRepo, entities.DefaultTreatmentBundles)
	wizard := usecase.NewWizardUseCase(store, usageStep, prescriptionStep, materialStep, treatmentStep, reviewStep)

	wizardHandler := handlers.NewWizardHandler(wizard, store, reviewStep)
	selectionHandler := handlers.NewSelectionHandler(usageStep, materialStep, treatmentStep)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionStep)

	var analysisHandler *handlers.FaceAnalysisHandler
	analyzer, err := vision.NewFaceAnalyzer()
	if err != nil {
		log.Printf("Face analyzer not configured: %v", err)
	} else {
		analysisHandler = handlers.NewFaceAnalysisHandler(usecase.NewFaceAnalysisUseCase(analyzer))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConfiguratorRoutes(v1, wizardHandler, selectionHandler, prescriptionHandler)
	addAnalysisRoutes(v1, analysisHandler)
}

// assertBundlesConsistent refuses to start when a curated bundle drifted out
// of sync with the treatment incompatibility table.
func assertBundlesConsistent(treatments *repository2.TreatmentDynamoRepository) {
	all, err := treatments.ListActive(context.Background())
	if err != nil {
		log.Fatalf("Failed to load treatments for bundle validation: %v", err)
	}
	if err := entities.ValidateBundles(entities.DefaultTreatmentBundles, all); err != nil {
		log.Fatalf("Treatment bundle validation failed: %v", err)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
