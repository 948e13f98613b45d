package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/config"
	"github.com/conquiguias/conquiguias-api/internal/handlers"
	"github.com/conquiguias/conquiguias-api/internal/identity"
	"github.com/conquiguias/conquiguias-api/internal/imgur"
	authmw "github.com/conquiguias/conquiguias-api/internal/middleware"
	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/internal/store"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	githubStore := store.NewGitHub(cfg.GitHub)

	sessionService := services.NewSessionService(cfg.JWTSecret, cfg.JWTSessionExpiry)
	emailService := services.NewEmailService(cfg.SMTP)
	attendanceService := services.NewAttendanceService(githubStore)
	evaluationService := services.NewEvaluationService(githubStore)
	formService := services.NewFormService(githubStore, evaluationService, attendanceService)
	imageService := services.NewImageService(githubStore, cfg.PublicBaseURL)
	imgurClient := imgur.NewClient(cfg.ImgurClientID)

	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, evaluationService)
	formHandler := handlers.NewFormHandler(formService)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	imageHandler := handlers.NewImageHandler(imageService)
	socialHandler := handlers.NewSocialHandler(imgurClient, cfg.AdminEmails)
	compatRouter := handlers.NewCompatRouter(attendanceHandler, formHandler, evaluationHandler, imageHandler)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Post("/guardar", attendanceHandler.Submit)
	api.Get("/leer", attendanceHandler.Read)
	api.Get("/verRespuestas", attendanceHandler.Responses)

	api.Post("/guardarFormulario", formHandler.Create)
	api.Get("/obtenerFormulario", formHandler.Get)
	api.Get("/listarFormularios", formHandler.List)
	api.Get("/limpiarFormulariosVencidos", formHandler.Purge)
	api.Post("/limpiarFormulariosVencidos", formHandler.Purge)

	api.Post("/guardarEvaluacion", evaluationHandler.Save)
	api.Get("/obtenerEvaluacion", evaluationHandler.Get)
	api.Post("/guardarResultadoExamen", evaluationHandler.SubmitResult)

	api.Get("/listarImagenes", imageHandler.List)
	api.Post("/subirImagen", imageHandler.Upload)

	// Legacy single-endpoint surface
	api.Get("/formulario", compatRouter.Handle)
	api.Post("/formulario", compatRouter.Handle)

	api.Get("/social", socialHandler.Handle)
	api.Post("/social", socialHandler.Handle)

	if cfg.Firebase.ProjectID == "" {
		log.Println("Firebase project not configured; auth endpoints disabled")
		unavailable := func(c *drift.Context) {
			_ = c.JSON(503, map[string]string{"error": "servicio de autenticación no configurado"})
		}
		api.Post("/auth", unavailable)
		api.Get("/auth/session", unavailable)
	} else {
		provider, err := identity.NewFirebase(ctx, cfg.Firebase)
		if err != nil {
			log.Fatalf("Failed to initialize identity provider: %v", err)
		}

		profiles, err := identity.NewFirestoreProfiles(ctx, cfg.Firebase.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize profile store: %v", err)
		}

		var photos identity.PhotoStore
		if cfg.Firebase.StorageBucket != "" {
			bucketPhotos, err := identity.NewBucketPhotos(ctx, cfg.Firebase.StorageBucket)
			if err != nil {
				log.Fatalf("Failed to initialize photo store: %v", err)
			}
			photos = bucketPhotos
		}

		authService := services.NewAuthService(provider, profiles, photos, sessionService, emailService)
		authHandler := handlers.NewAuthHandler(authService)

		api.Post("/auth", authHandler.Handle)

		session := api.Group("/auth")
		session.Use(authmw.Auth(sessionService))
		session.Get("/session", authHandler.Session)
	}

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(cfg.PurgeInterval)
		for range ticker.C {
			purged, err := formService.PurgeExpired(context.Background(), time.Now())
			if err != nil {
				log.Printf("scheduled purge failed: %v", err)
				continue
			}
			if len(purged) > 0 {
				log.Printf("scheduled purge removed %d expired forms", len(purged))
			}
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
