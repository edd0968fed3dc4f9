package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studyabroad/departure-planner/cmd/benchmark"
	"studyabroad/departure-planner/cmd/checklist"
	"studyabroad/departure-planner/cmd/compare"
	"studyabroad/departure-planner/cmd/costs"
	"studyabroad/departure-planner/cmd/profile"
	"studyabroad/departure-planner/cmd/report"
	"studyabroad/departure-planner/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load .env before anything logs
	loadEnvSilently()

	level := configureLogLevelDirectly()
	root.Log.SetLevel(level)

	root.Init()

	root.Cmd.AddCommand(profile.Cmd)
	root.Cmd.AddCommand(checklist.Cmd)
	root.Cmd.AddCommand(benchmark.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(costs.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL
// and returns it
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
