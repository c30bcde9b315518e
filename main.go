package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	logger := log.New(os.Stderr, "go-life: ", log.LstdFlags)

	config, err := loadConfiguration(*configPath, logger)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	session, err := initializeGame(config, logger)
	if err != nil {
		logger.Fatalf("initialize game: %v", err)
	}
	displayGameInfo(os.Stdout, config, session)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var commands io.Reader
	if config.Interactive {
		commands = os.Stdin
	}

	if err := session.Run(ctx, commands, os.Stdout); err != nil {
		logger.Printf("run: %v", err)
	}

	displayFinalStats(os.Stdout, session)
}
