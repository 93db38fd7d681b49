package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/storage/redis/v3"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/mexemexe02/joia-karaoke/config"
	"github.com/mexemexe02/joia-karaoke/db"
	"github.com/mexemexe02/joia-karaoke/handlers"
	"github.com/mexemexe02/joia-karaoke/karaoke"
	"github.com/mexemexe02/joia-karaoke/library"
	"github.com/mexemexe02/joia-karaoke/middleware"
)

var pool *pgxpool.Pool

func main() {
	cfg := config.Load()

	if err := db.Migrate(context.Background(), cfg.DSN()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	var err error
	pool, err = db.Connect(context.Background(), cfg.DSN())
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}
	defer pool.Close()

	store := library.NewStore(pool)
	client := karaoke.NewClient(cfg.ProcessorURL)
	jobs := karaoke.NewManager(client, karaoke.NewReconciler(store), cfg.PollInterval)

	// Hand the collaborators to the handler package
	handlers.Library = store
	handlers.Jobs = jobs

	app := fiber.New()

	app.Use(recoverer.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURLs,
	}))

	// Redis-backed rate limit on job submission; creation is expensive on
	// the processor side.
	redisStore := redis.New(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	createLimit := limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		Storage:    redisStore,
	})

	app.Get("/", handlers.Root)
	app.Get("/health", handlers.Health)

	api := app.Group("/api")
	api.Get("/songs", middleware.ValidateFilterQuery, handlers.GetSongs)
	api.Get("/songs/languages", handlers.GetLanguages)
	api.Post("/songs", handlers.CreateSong)

	api.Post("/karaoke", createLimit, handlers.CreateKaraoke)
	api.Get("/karaoke/:jobID", handlers.GetKaraokeJob)
	api.Delete("/karaoke/:jobID", handlers.DismissKaraokeJob)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		jobs.StopAll()
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting karaoke library service on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
