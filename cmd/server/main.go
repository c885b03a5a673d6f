package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/accountsvc/user-service/internal/api"
	"github.com/accountsvc/user-service/internal/core/domain"
	"github.com/accountsvc/user-service/internal/core/password"
	"github.com/accountsvc/user-service/internal/core/ports"
	"github.com/accountsvc/user-service/internal/core/service"
	"github.com/accountsvc/user-service/internal/core/token"
	"github.com/accountsvc/user-service/internal/infrastructure/config"
	mongodb "github.com/accountsvc/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/accountsvc/user-service/internal/infrastructure/db/redis"
	"github.com/accountsvc/user-service/internal/infrastructure/mail"
	"github.com/accountsvc/user-service/internal/infrastructure/queue"
	"github.com/accountsvc/user-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Core wiring ---
	hasher := password.NewHasher(cfg.BcryptCost)
	codec := token.NewCodec(cfg.JWTSecret)
	guard := redisdb.NewResetGuard(rdb)

	dispatcher := queue.NewDispatcher(cfg.MailWorkers, mail.NewLogMailer(log), log)
	dispatcher.Start(ctx)

	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userRepo, hasher, codec, guard, dispatcher,
		cfg.AccessTokenTTL, cfg.ResetTokenTTL)

	if err := bootstrapSuperuser(ctx, cfg, userService); err != nil {
		log.Fatal().Err(err).Msg("superuser bootstrap failed")
	}

	// --- HTTP ---
	e := api.NewRouter(db, rdb, authService, userService, cfg.OpenRegistration, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

// bootstrapSuperuser creates the first admin account when the configured
// email does not exist yet. A configured email without a password is a
// misconfiguration and refuses to start.
func bootstrapSuperuser(ctx context.Context, cfg *config.Config, users ports.UserService) error {
	if cfg.FirstSuperuser == "" {
		return nil
	}
	if cfg.FirstSuperuserPassword == "" {
		return errors.New("FIRST_SUPERUSER set without FIRST_SUPERUSER_PASSWORD")
	}

	if _, err := users.GetByEmail(ctx, cfg.FirstSuperuser); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	_, err := users.Create(ctx, ports.CreateUserInput{
		Email:    cfg.FirstSuperuser,
		Password: cfg.FirstSuperuserPassword,
		Role:     domain.RoleAdmin,
	})
	return err
}
