package main

import (
	"fmt"

	"github.com/yjkwon-dev/pinggye/internal/adapter"
	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("pinggye-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err := tui.Run(api, buildVersion, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
