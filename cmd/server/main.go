package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pizzeria-brothers/restaurant-system/internal/api"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/service"
	"github.com/pizzeria-brothers/restaurant-system/internal/infrastructure/config"
	mongodb "github.com/pizzeria-brothers/restaurant-system/internal/infrastructure/db/mongo"
	redisdb "github.com/pizzeria-brothers/restaurant-system/internal/infrastructure/db/redis"
	"github.com/pizzeria-brothers/restaurant-system/internal/infrastructure/queue"
	"github.com/pizzeria-brothers/restaurant-system/pkg/logger"
	"github.com/pizzeria-brothers/restaurant-system/pkg/token"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET no configurado: usando el secreto de desarrollo, no apto para producción")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- External stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.StoreTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a Redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db, cfg.StoreTimeout)
	mesaRepo := mongodb.NewMesaRepository(db, cfg.StoreTimeout)
	auditRepo := mongodb.NewAuditRepository(db, cfg.StoreTimeout)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("no se pudieron crear los índices de usuarios")
	}

	// --- Services ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	tokens := token.NewManager(cfg.JWTSecret, token.DefaultTTL)
	statsCache := redisdb.NewStatsCache(rdb, cfg.Redis.StatsTTL)

	authService := service.NewAuthService(userRepo, tokens, dispatcher, log)
	userService := service.NewUserService(userRepo, log)
	mesaService := service.NewMesaService(mesaRepo, statsCache, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Auth:     authService,
		Users:    userService,
		Mesas:    mesaService,
		Tokens:   tokens,
		UserRepo: userRepo,
		Mongo:    db,
		Redis:    rdb,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("el servidor HTTP terminó con error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("apagando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado forzado")
		os.Exit(1)
	}
}
