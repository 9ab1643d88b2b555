package main

import (
	"log"
	"os"

	"github.com/fincal-labs/fincal-cli/internal/adapters/driven/clipboard"
	"github.com/fincal-labs/fincal-cli/internal/adapters/driven/config/file"
	"github.com/fincal-labs/fincal-cli/internal/adapters/driven/webdata"
	"github.com/fincal-labs/fincal-cli/internal/adapters/driving/cli"
	"github.com/fincal-labs/fincal-cli/internal/core/services"
	"github.com/fincal-labs/fincal-cli/internal/logger"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	// Log to a file; the TUI owns the terminal.
	if err := logger.Init(""); err != nil {
		log.Printf("failed to initialise logging: %v", err)
		return 1
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		log.Printf("failed to create config store: %v", err)
		return 1
	}
	settings, err := configStore.Get()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}

	source := webdata.New(settings.BaseURL, webdata.NewRateLimiter(settings.RequestRate, settings.RequestBurst))
	calendarSvc := services.NewCalendarService(source)

	cli.SetServices(&cli.Services{
		Calendar:  calendarSvc,
		Clipboard: clipboard.New(),
		Settings:  settings,
	})

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
