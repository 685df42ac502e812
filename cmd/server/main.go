package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/internal/generator"
	httphandler "github.com/yjkwon-dev/pinggye/internal/handler/http"
	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/internal/server"
	"github.com/yjkwon-dev/pinggye/internal/service"
	"github.com/yjkwon-dev/pinggye/internal/session"
	"github.com/yjkwon-dev/pinggye/internal/store"
)

const janitorInterval = 10 * time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pinggye-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	gen := generator.NewOpenAIGenerator(cfg.OpenAI, log)

	sessions := session.NewManager(cfg.App.SessionTTL, log)
	sessions.StartJanitor(janitorInterval)
	defer sessions.Stop()

	services := service.NewServices(storages, gen, cfg.App.UsageWarnLimit, log)
	handler := httphandler.NewHandler(services, sessions, cfg.App.SessionTTL, log)

	srv := server.New(cfg.Server, handler.InitRoutes(), log)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
