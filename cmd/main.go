// @title Pathfinder Backend API
// @version 1.0
// @description Pathfinder Backend API for AI trip planning
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata" // export time zones on hosts without zoneinfo

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "PATHFINDER_BACK-END/docs" // This is required for swagger
	"PATHFINDER_BACK-END/internal/config"
	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/handlers"
	"PATHFINDER_BACK-END/internal/routes"
	"PATHFINDER_BACK-END/internal/session"
	"PATHFINDER_BACK-END/internal/storage"
)

func connectPostgres(cfg *config.Config) *pgxpool.Pool {
	// simple protocol is required behind PgBouncer (:6543)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "pathfinder-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.Database.QueryTimeout.Milliseconds(), 10)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	return pool
}

func newProvider(cfg config.GeneratorConfig) generator.Provider {
	if !generator.CredentialUsable(cfg.APIKey) {
		return nil
	}
	switch cfg.Provider {
	case "openai":
		return generator.NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.Temperature)
	default:
		p, err := generator.NewGeminiProvider(context.Background(), cfg.APIKey, cfg.Model, float32(cfg.Temperature))
		if err != nil {
			log.Printf("Warning: gemini client: %v", err)
			return nil
		}
		return p
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- Storage ---
	var (
		users       storage.UserStore
		itineraries storage.ItineraryStore
		mongoStore  *storage.MongoStore
	)
	if cfg.Storage.Driver == "memory" {
		log.Println("Using in-memory storage; saved itineraries and accounts are lost on restart")
		users = storage.NewMemoryUserStore()
		itineraries = storage.NewMemoryStore()
	} else {
		pool := connectPostgres(cfg)
		defer pool.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		userStore := storage.NewPostgresUserStore(pool)
		if err := userStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("users schema: %v", err)
		}
		users = userStore

		if cfg.Storage.Driver == "mongo" {
			mongoStore, err = storage.ConnectMongo(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDatabase)
			if err != nil {
				log.Fatalf("mongo: %v", err)
			}
			itineraries = mongoStore
		} else {
			pgStore := storage.NewPostgresStore(pool)
			if err := pgStore.EnsureSchema(ctx); err != nil {
				log.Fatalf("itineraries schema: %v", err)
			}
			itineraries = pgStore
		}
		cancel()
	}

	// --- Generator and sessions ---
	gen := generator.NewService(newProvider(cfg.Generator), generator.Options{
		APIKey:   cfg.Generator.APIKey,
		Timeout:  cfg.Generator.Timeout,
		Extended: cfg.Generator.Extended,
	})
	sessions := session.NewStore(cfg.Session.TTL, cfg.Session.CleanupInterval, cfg.Session.RegenerationLimit)
	guard := session.NewGuard()

	loc, err := time.LoadLocation(cfg.Export.Timezone)
	if err != nil {
		log.Printf("Warning: unknown EXPORT_TIMEZONE %q, using UTC: %v", cfg.Export.Timezone, err)
		loc = time.UTC
	}

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:        handlers.NewAuthHandler(users, &cfg.JWT),
		GoogleAuth:  handlers.NewGoogleAuthHandler(users, cfg),
		Health:      handlers.NewHealthHandler(itineraries, gen, sessions),
		Generate:    handlers.NewGenerateHandler(gen, guard),
		Sessions:    handlers.NewSessionsHandler(gen, sessions, guard, itineraries, loc),
		Itineraries: handlers.NewItinerariesHandler(itineraries, loc),
	}, &cfg.JWT)

	// --- HTTP Server + Graceful Shutdown ---
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// generation may hold a response open for the whole generator timeout
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(c.Handler(mux), "pathfinder"),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout + cfg.Generator.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if mongoStore != nil {
		if err := mongoStore.Close(shutdownCtx); err != nil {
			log.Printf("Mongo disconnect error: %v", err)
		}
	}
	log.Println("Server stopped.")
}
