package main

import (
	"os"
	"os/signal"
	"syscall"

	"ckd-followup-backend/internal/config"
	"ckd-followup-backend/internal/database"
	"ckd-followup-backend/internal/handler"
	"ckd-followup-backend/internal/middleware"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/logger"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	log := logger.New(cfg.Server.GinMode)
	log.Info().Msg("Configuration loaded successfully")

	// 2. Initialize session token utilities with config
	utils.InitJWT(cfg.Session.Secret, cfg.Session.Expiry)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg, log)
	database.Migrate(db, log)

	// 4. Seed demo data on a fresh database
	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	recordRepo := repository.NewRecordRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo)
	patientService := service.NewPatientService(patientRepo, recordRepo)
	recordService := service.NewRecordService(recordRepo, patientRepo)
	staffService := service.NewStaffService(userRepo)
	settingService := service.NewSettingService(settingRepo)
	dashboardService := service.NewDashboardService(patientRepo, recordRepo)

	// 7. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// Apply CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	patientHandler := handler.NewPatientHandler(patientService)
	recordHandler := handler.NewRecordHandler(recordService, patientService)
	staffHandler := handler.NewStaffHandler(staffService)
	settingHandler := handler.NewSettingHandler(settingService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "ckd-followup-backend",
		})
	})

	// Public routes
	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(middleware.SessionAuth(userRepo))
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/dashboard", dashboardHandler.Dashboard)

		patients := authed.Group("/patients")
		{
			patients.GET("", patientHandler.List)
			patients.GET("/add", patientHandler.AddForm)
			patients.POST("/add", patientHandler.Create)
			patients.GET("/:id", patientHandler.Detail)
			patients.GET("/:id/edit", patientHandler.EditForm)
			patients.POST("/:id/edit", patientHandler.Update)
			patients.POST("/:id/delete", patientHandler.Delete)
		}

		records := authed.Group("/records")
		{
			records.GET("", recordHandler.List)
			records.GET("/add", recordHandler.AddForm)
			records.POST("/add", recordHandler.Create)
			records.GET("/:id", recordHandler.Detail)
			records.GET("/:id/edit", recordHandler.EditForm)
			records.POST("/:id/edit", recordHandler.Update)
			records.POST("/:id/delete", recordHandler.Delete)
		}

		// Admin-only routes
		staff := authed.Group("/staff", middleware.RequireAdmin())
		{
			staff.GET("", staffHandler.List)
			staff.GET("/add", staffHandler.AddForm)
			staff.POST("/add", staffHandler.Create)
			staff.GET("/:id/edit", staffHandler.EditForm)
			staff.POST("/:id/edit", staffHandler.Update)
			staff.POST("/:id/delete", staffHandler.Delete)
		}

		settings := authed.Group("/settings")
		{
			settings.GET("", middleware.RequireAdmin(), settingHandler.List)
			settings.POST("/add", middleware.RequireAdminJSON(), settingHandler.Create)
			settings.POST("/:id/update", middleware.RequireAdminJSON(), settingHandler.Update)
			settings.POST("/:id/delete", middleware.RequireAdminJSON(), settingHandler.Delete)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server exited")
}
