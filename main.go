package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/retailscope/footfall/bootstrap"
	"github.com/retailscope/footfall/config"
	"github.com/retailscope/footfall/log"
	"github.com/retailscope/footfall/orm"
)

const defaultQuery = "Analyze the footfall patterns for retail stores in Marathahalli, Bangalore. Focus on peak hours and comparison with competitors."

func main() {
	// Initialize logging
	log.Init()

	// Load .env if present
	_ = godotenv.Load()

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C (SIGINT)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Program terminated externally. Exiting...")
		cancel()
	}()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(ctx, "Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	// 1. Init App Components
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Setup failed: %v", err)
	}

	// 2. Run the analysis
	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if query == "" {
		query = defaultQuery
	}

	result, err := app.Analyzer.Analyze(ctx, query)
	if err != nil {
		log.Fatalf(ctx, "Analysis failed: %v", err)
	}

	fmt.Println("\n--- Analysis Report ---")
	fmt.Println(result.FinalAnswer)

	// 3. Persist the run summary
	if app.History != nil {
		if err := orm.SaveRun(app.History, result); err != nil {
			log.Errorf(ctx, "Failed to save run history: %v", err)
		} else {
			log.Infof(ctx, "Saved run %s to history", result.RunID)
		}
	}
}
