package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tracker-service/internal/auth"
	"tracker-service/internal/config"
	"tracker-service/internal/handlers"
	"tracker-service/internal/metrics"
	"tracker-service/internal/models"
	"tracker-service/internal/repository"
	"tracker-service/internal/services"
	"tracker-service/internal/storage"
	"tracker-service/internal/views"
)

func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	store := InitSessionStore(cfg)
	authenticator := InitAuthenticator(cfg)

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	app := fiber.New(fiber.Config{
		Views: views.Engine(),
	})

	httpMetrics := metrics.NewHTTPMetrics()
	app.Use(httpMetrics.Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Auth ceremony routes
	authHandler := handlers.NewAuthHandler(authenticator, store, cfg.BaseURL)
	app.Get("/", authHandler.Index)
	app.Get("/login", authHandler.Login)
	app.Get(cfg.OIDCRedirectPath, authHandler.Callback)
	app.Get("/logout", authHandler.Logout)

	// Everything below requires a signed-in principal
	gate := auth.RequireLogin(store)
	projectHandler := handlers.NewProjectHandler(projectService, taskService)
	app.Get("/projects", gate, projectHandler.ListProjects)
	app.Get("/create", gate, projectHandler.NewProjectForm)
	app.Post("/create", gate, projectHandler.CreateProject)
	app.Get("/delete/:id", gate, projectHandler.DeleteProject)
	app.Get("/update/:id", gate, projectHandler.EditProjectForm)
	app.Post("/update/:id", gate, projectHandler.UpdateProject)
	app.Get("/project/:id", gate, projectHandler.OpenProject)
	app.Post("/project/:id", gate, projectHandler.CreateTask)

	taskHandler := handlers.NewTaskHandler(taskService)
	app.Get("/task/update/:id/:status", gate, taskHandler.UpdateTaskStatus)
	app.Get("/task/delete/:id", gate, taskHandler.DeleteTask)
	app.Get("/task/details/:id", gate, taskHandler.TaskDetails)
	app.Post("/task/details/:id", gate, taskHandler.SubmitTaskDetails)

	log.Info().Msg("Registered routes:")
	for _, r := range app.GetRoutes() {
		log.Info().Msgf("  %s %s", r.Method, r.Path)
	}

	port := cfg.AppPort
	if port == "" {
		port = "8000"
		log.Info().Msgf("Defaulting to port %s", port)
	}
	log.Info().Msgf("Server listening on port %s", port)
	log.Fatal().Err(app.Listen(":" + port)).Msg("server stopped")
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Config error")
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Project{}, &models.Task{})
	if err != nil {
		log.Fatal().Err(err).Msg("Database migration failed")
	}
}

// InitSessionStore backs sessions with Redis when configured and falls back
// to the in-memory store otherwise (single-instance deployments, tests).
func InitSessionStore(cfg *config.Config) *session.Store {
	sessionConfig := session.Config{
		CookieHTTPOnly: true,
		KeyGenerator:   uuid.NewString,
	}
	if cfg.RedisHost != "" {
		redisClient, err := storage.NewRedisClient(cfg.RedisHost, cfg.RedisPort)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		sessionConfig.Storage = storage.NewSessionStorage(redisClient)
	}
	return session.New(sessionConfig)
}

func InitAuthenticator(cfg *config.Config) *auth.Authenticator {
	authenticator, err := auth.NewAuthenticator(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("OIDC provider discovery failed")
	}
	return authenticator
}
