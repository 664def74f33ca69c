package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formery/config"
	"github.com/lshigami/Formery/database"
	_ "github.com/lshigami/Formery/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Formery/internal/controller"
	"github.com/lshigami/Formery/internal/logger"
	"github.com/lshigami/Formery/internal/model"
	"github.com/lshigami/Formery/internal/repository"
	"github.com/lshigami/Formery/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Formery API
// @version 1.0
// @description Form builder API: accounts, form definitions, templates, themes, responses and file uploads.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
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
			repository.NewUserRepository,
			repository.NewFormRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTokenService,
			service.NewUserService,
			service.NewFormService,
			service.NewResponseService,
			service.NewUploadService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewUserController,
			controller.NewFormController,
			controller.NewResponseController,
			controller.NewUploadController,
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

	// Custom logger using Zerolog for Gin
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
		return "" // Returning empty string to avoid double logging if Gin's default logger is also active
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	userCtrl *controller.UserController,
	formCtrl *controller.FormController,
	responseCtrl *controller.ResponseController,
	uploadCtrl *controller.UploadController,
) {
	auth := controller.RequireAuth(tokens)

	// Stored uploads are served straight from disk.
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/signup", userCtrl.Signup)
			users.POST("/login", userCtrl.Login)
			users.POST("/logout", userCtrl.Logout)
			users.GET("/me", userCtrl.Me)
			users.GET("/profile", auth, userCtrl.GetProfile)
			users.PUT("/profile", auth, userCtrl.UpdateProfile)
		}

		forms := api.Group("/forms")
		{
			forms.POST("", auth, formCtrl.CreateForm)
			forms.GET("", auth, formCtrl.ListForms)
			forms.GET("/templates/:name", formCtrl.GetTemplate)
			forms.GET("/:id", formCtrl.GetForm) // public so respondents can load the form
			forms.PUT("/:id", auth, formCtrl.UpdateForm)
			forms.DELETE("/:id", auth, formCtrl.DeleteForm)
		}

		api.GET("/themes", formCtrl.ListThemes)

		responses := api.Group("/responses")
		{
			responses.POST("/submit", responseCtrl.Submit) // public, no account needed to answer
			responses.GET("", auth, responseCtrl.ListByForm)
			responses.GET("/user", auth, responseCtrl.ListForOwner)
			responses.DELETE("/:id", auth, responseCtrl.Delete)
		}

		upload := api.Group("/upload", auth)
		{
			upload.POST("", uploadCtrl.Upload)
			upload.POST("/image", uploadCtrl.Upload)
			upload.POST("/document", uploadCtrl.Upload)
		}
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Formery API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.Form{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
