package cmd

import (
	"fmt"
	"os"

	"github.com/coursecat/coursecat/pkg/config"
	"github.com/coursecat/coursecat/pkg/logger"
)

var (
	// Global flags
	FlagLogLevel   = 0
	FlagConfigFile = "config.yaml"
	FlagLogFile    = "activity.log"
	FlagDelimiter  string

	initialized bool
)

// initCore initialises logging and configuration for a command run.
func initCore() {
	if initialized {
		return
	}

	if err := logger.Init(FlagLogLevel, FlagLogFile); err != nil {
		fmt.Printf("Failed initializing logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.GetLogger("app")

	if err := config.Init(FlagConfigFile); err != nil {
		log.WithError(err).Fatal("Failed initializing config")
	}

	// flag overrides config
	if FlagDelimiter != "" {
		config.Config.Catalog.Delimiter = FlagDelimiter
	}

	initialized = true
}
