package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wizard-2006/CrimeLogix/internal/config"
	"github.com/wizard-2006/CrimeLogix/internal/handlers"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
	"github.com/wizard-2006/CrimeLogix/internal/routes"
	"github.com/wizard-2006/CrimeLogix/internal/services"
	"github.com/wizard-2006/CrimeLogix/pkg/db"
)

// @title CrimeLogix API
// @version 1.0
// @description Record-management backend for criminal cases with an admin approval workflow.
// @BasePath /api/v1
func main() {
	config.LoadConfig()

	gormDB, err := db.Init(config.AppConfig.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(gormDB)

	userRepo := repositories.NewGormUserRepository(gormDB)
	caseRepo := repositories.NewGormCaseRepository(gormDB)
	victimRepo := repositories.NewGormVictimRepository(gormDB)
	suspectRepo := repositories.NewGormSuspectRepository(gormDB)
	evidenceRepo := repositories.NewGormEvidenceRepository(gormDB)
	recordRepo := repositories.NewGormRecordRepository(gormDB)

	recordService := services.NewRecordService(
		gormDB, recordRepo, caseRepo, victimRepo, suspectRepo, evidenceRepo, userRepo)

	authHandler := handlers.NewAuthHandler(userRepo)
	recordHandler := handlers.NewRecordHandler(recordService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(router, userRepo, authHandler, recordHandler)

	port := config.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
