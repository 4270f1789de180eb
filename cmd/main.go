package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prepmint/examcore/config"
	"github.com/prepmint/examcore/database"
	adminctrl "github.com/prepmint/examcore/internal/controller/admin"
	userctrl "github.com/prepmint/examcore/internal/controller/user"
	"github.com/prepmint/examcore/internal/logger"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
	"github.com/prepmint/examcore/internal/service"
	"github.com/prepmint/examcore/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PrepMint Exam Core API
// @version 1.0
// @description Mock test generation, past-year-paper practice and attempt scoring for course students.
// @contact.name API Support
// @contact.email support@prepmint.example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewQuestionRepository,
			repository.NewPaperRepository,
			repository.NewAttemptRepository,
		),

		// Storage Layer
		fx.Provide(
			func(cfg *config.Config) (storage.BlobStore, error) {
				return storage.NewFSStore(cfg.Storage.Dir)
			},
		),

		// Services Layer
		fx.Provide(
			service.NewSampler,
			service.NewScorer,
			service.NewDuplicateChecker,
			service.NewCourseService,
			service.NewQuestionService,
			service.NewPaperService,
			service.NewMockTestService,
			service.NewUploadService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminController,
			userctrl.NewCourseController,
			userctrl.NewMockTestController,
			userctrl.NewPYQController,
		),

		// Invokers - Functions that are executed by Fx
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
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route Gin's access log through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
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

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.AdminController,
	courseCtrl *userctrl.CourseController,
	mockTestCtrl *userctrl.MockTestController,
	pyqCtrl *userctrl.PYQController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/courses", adminCtrl.CreateCourse)
		adminAPIGroup.POST("/questions", adminCtrl.CreateQuestion)
		adminAPIGroup.POST("/papers", adminCtrl.CreatePaper)
		adminAPIGroup.POST("/uploads", adminCtrl.UploadImage)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/courses", courseCtrl.GetAllCourses)

		mockGroup := userAPIGroup.Group("/mock")
		mockGroup.GET("/:course_id/questions", mockTestCtrl.GenerateTest)
		mockGroup.POST("/submit", mockTestCtrl.SubmitAttempt)
		mockGroup.GET("/attempts/:student_id", mockTestCtrl.GetStudentAttempts)
		mockGroup.GET("/attempt/:attempt_id/details", mockTestCtrl.GetAttemptDetails)

		pyqGroup := userAPIGroup.Group("/pyq")
		pyqGroup.GET("/:course_id/papers", pyqCtrl.GetPapers)
		pyqGroup.GET("/paper/:paper_id/questions", pyqCtrl.GetPaperQuestions)
		pyqGroup.POST("/attempt/submit", pyqCtrl.SubmitAttempt)
		pyqGroup.GET("/attempts/:student_id", pyqCtrl.GetStudentAttempts)
		pyqGroup.GET("/attempt/:attempt_id/details", pyqCtrl.GetAttemptDetails)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam core server starting on port %s", cfg.Server.Port)
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
		&model.Course{},
		&model.Paper{},
		&model.Question{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
