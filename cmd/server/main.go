// @title                       DeviceHub API
// @version                     1.0
// @description                 Device inventory, access, billing and maintenance console for QSafe hardware.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qsafe/devicehub/internal/api"
	"github.com/qsafe/devicehub/internal/api/handler"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/service"
	"github.com/qsafe/devicehub/internal/core/store"
	mongodb "github.com/qsafe/devicehub/internal/infrastructure/db/mongo"
	redisdb "github.com/qsafe/devicehub/internal/infrastructure/db/redis"
	"github.com/qsafe/devicehub/internal/infrastructure/memory"
	"github.com/qsafe/devicehub/internal/infrastructure/queue"
	"github.com/qsafe/devicehub/internal/pkg/config"
	"github.com/qsafe/devicehub/pkg/logger"
	"github.com/qsafe/devicehub/pkg/token"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && !cfg.IsProduction(),
		Service: "devicehub",
		Env:     cfg.Env,
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting devicehub")

	st := store.New(time.Now)
	if cfg.Seed.Enabled {
		hash, err := service.HashPassword(cfg.Seed.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("hash seed password")
		}
		if err := store.Seed(st, hash); err != nil {
			log.Fatal().Err(err).Msg("seed store")
		}
		log.Info().Msg("demo data loaded")
	}
	shared := store.NewShared(st)

	var pingers []handler.Pinger

	var (
		ledger      queue.Ledger = memory.NewAuditLedger()
		mongoClient *mongo.Client
	)
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "devicehub"})
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongodb")
		}
		repo := mongodb.NewAuditRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("create audit indexes")
		}
		mongoClient, ledger = client, repo
		pingers = append(pingers, mongodb.NewPinger(db))
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit ledger on mongodb")
	}

	var (
		denylist    ports.TokenDenylist = memory.NewDenylist()
		redisClient *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		redisClient, denylist = client, redisdb.NewDenylist(client)
		pingers = append(pingers, redisdb.NewPinger(client))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("token denylist on redis")
	}

	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, ledger, log)
	dispatcher.Start()

	issuer, err := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("build token issuer")
	}

	e := api.NewRouter(api.Deps{
		Auth:        service.NewAuthService(shared, issuer, denylist, log),
		Users:       service.NewUserService(shared, dispatcher, log),
		Devices:     service.NewDeviceService(shared, dispatcher, log),
		Access:      service.NewAccessService(shared, dispatcher, log),
		Billing:     service.NewBillingService(shared, dispatcher, cfg.Billing.Rate, cfg.Billing.Currency, log),
		Maintenance: service.NewMaintenanceService(shared, dispatcher, log),
		Audit:       dispatcher,
		Issuer:      issuer,
		Denylist:    denylist,
		Pingers:     pingers,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Str("addr", ":"+cfg.Port).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("audit dispatcher drain")
	}
	closeStores(shutdownCtx, log, mongoClient, redisClient)
	log.Info().Msg("stopped")
}

func closeStores(ctx context.Context, log zerolog.Logger, m *mongo.Client, r *goredis.Client) {
	if m != nil {
		if err := m.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}
	if r != nil {
		if err := r.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
}
