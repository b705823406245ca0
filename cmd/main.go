package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ndthang/interntrack/config"
	"github.com/ndthang/interntrack/database"
	_ "github.com/ndthang/interntrack/docs" // Swagger docs - auto-generated
	"github.com/ndthang/interntrack/internal/controller"
	"github.com/ndthang/interntrack/internal/logger"
	"github.com/ndthang/interntrack/internal/middleware"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/ndthang/interntrack/internal/repository"
	"github.com/ndthang/interntrack/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Interntrack API
// @version 1.0
// @description Internship application tracking with mock-interview practice, resume ATS scoring and inbox integration.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewSessionRepository,
			repository.NewAnswerRepository,
			repository.NewFeedbackRepository,
			repository.NewApplicationRepository,
			repository.NewResumeRepository,
		),

		// Services layer
		fx.Provide(
			service.NewScorerService,
			service.NewSessionService,
			service.NewAnswerService,
			service.NewReportService,
			service.NewApplicationService,
			service.NewMockAtsAnalyzer,
			service.NewResumeService,
			service.NewMockInboxProvider,
		),

		// API controllers layer
		fx.Provide(
			controller.NewInterviewController,
			controller.NewApplicationController,
			controller.NewResumeController,
			controller.NewEmailController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin request logging through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *controller.InterviewController,
	applicationCtrl *controller.ApplicationController,
	resumeCtrl *controller.ResumeController,
	emailCtrl *controller.EmailController,
) {
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg))
	{
		interviewGroup := api.Group("/interview")
		interviewGroup.GET("/questions", interviewCtrl.ListQuestions)
		interviewGroup.POST("/sessions", interviewCtrl.StartSession)
		interviewGroup.GET("/sessions", interviewCtrl.ListSessions)
		interviewGroup.POST("/sessions/:session_id/answers", interviewCtrl.SubmitAnswer)
		interviewGroup.POST("/sessions/:session_id/complete", interviewCtrl.CompleteSession)
		interviewGroup.GET("/sessions/:session_id/report", interviewCtrl.GetReport)

		applicationsGroup := api.Group("/applications")
		applicationsGroup.GET("", applicationCtrl.ListApplications)
		applicationsGroup.POST("", applicationCtrl.CreateApplication)
		applicationsGroup.PUT("/:id", applicationCtrl.UpdateApplication)
		applicationsGroup.DELETE("/:id", applicationCtrl.DeleteApplication)

		resumesGroup := api.Group("/resumes")
		resumesGroup.GET("", resumeCtrl.ListResumes)
		resumesGroup.POST("", resumeCtrl.RegisterResume)
		resumesGroup.GET("/:id", resumeCtrl.GetResume)
		resumesGroup.POST("/:id/analyze", resumeCtrl.AnalyzeResume)

		api.GET("/emails", emailCtrl.ListInterviewEmails)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interntrack API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.InterviewSession{},
		&model.InterviewAnswer{},
		&model.InterviewFeedback{},
		&model.Application{},
		&model.Resume{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
