package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/atelierworks/atelier/client"
	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/internal/infra/database"
	"github.com/atelierworks/atelier/internal/infra/gateway"
	"github.com/atelierworks/atelier/internal/infra/repository"
	"github.com/atelierworks/atelier/internal/infra/telemetry"
	"github.com/atelierworks/atelier/internal/present/rest"
	"github.com/atelierworks/atelier/internal/present/rest/middleware"
	"github.com/atelierworks/atelier/internal/service"
	"github.com/atelierworks/atelier/internal/usecase"
)

func main() {
	configPath := flag.String("config", "/etc/atelier/config.yaml", "path to config file")
	listen := flag.String("listen", ":8000", "listen address")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	nodeConfig := domain.Config{
		FQDN:       cfg.NodeInfo.FQDN,
		PrivateKey: cfg.NodeInfo.PrivateKey,
		ASID:       cfg.NodeInfo.ASID,
	}

	traceEndpoint := ""
	if cfg.Server.EnableTrace {
		traceEndpoint = cfg.Server.TraceEndpoint
	}
	shutdownTrace, err := telemetry.Setup(ctx, "atelier", traceEndpoint)
	if err != nil {
		slog.Error("failed to setup tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer shutdownTrace(ctx)

	db, err := database.NewPostgres(cfg.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = database.MigratePostgres(db)
	if err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb := database.NewRedis(cfg.Server.RedisAddr, cfg.Server.RedisPassword, cfg.Server.RedisDB)
	mc := database.NewMemcached(cfg.Server.MemcachedAddr)

	walletClient := client.New(cfg.Server.WalletEndpoint, cfg.NodeInfo.ASID, cfg.NodeInfo.PrivateKey)
	wallet := gateway.NewWalletGateway(walletClient)

	store := repository.NewStore(db)
	signal := service.NewSignalService(rdb)
	auth := service.NewAuthService(&nodeConfig)

	dispatcher := usecase.NewDispatcher(store, wallet, signal)
	social := usecase.NewSocialUsecase(store)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(otelecho.Middleware(cfg.NodeInfo.FQDN))

	authMiddleware := middleware.NewAuthMiddleware(auth, nodeConfig)
	e.Use(authMiddleware.IdentifyIdentity)

	handler := rest.NewHandler(nodeConfig, dispatcher, store, social, wallet, signal, mc)
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(*listen))
}
