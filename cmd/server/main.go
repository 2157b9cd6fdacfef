package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"hexcrawl-server/internal/engine"
	"hexcrawl-server/internal/server"
	"hexcrawl-server/internal/version"
	"hexcrawl-server/pkg/dungeon"
	"hexcrawl-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var tiles int
	var tuningPath string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&tiles, "tiles", 0, "Target floor tile count per level (0 for default)")
	flag.StringVar(&tuningPath, "tuning", "", "Path to YAML file with gameplay tuning overrides")
	flag.Parse()

	logger.Log.Info("Starting hexcrawl server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}
	if tiles > 0 {
		cfg.TargetTileCount = tiles
	}

	// Переопределение игровых констант из YAML (необязательное).
	if tuningPath != "" {
		if err := engine.LoadTuning(tuningPath); err != nil {
			logger.Log.Fatal("Failed to load tuning: ", err)
		}
		logger.Log.Infof("Tuning loaded from %s", tuningPath)
	}

	port := os.Getenv("HC_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Запуск сервера
	srv := server.New(cfg, dungeon.Generate, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.Fatal("Server error: ", err)
	}

	logger.Log.Info("Done.")
}
