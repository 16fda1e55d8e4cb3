package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fogwalker-server/internal/engine"
	"fogwalker-server/internal/server"
	"fogwalker-server/internal/version"
	"fogwalker-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var width, height int
	var spawnOverride string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&width, "width", 0, "World width in cells (0 for default)")
	flag.IntVar(&height, "height", 0, "World height in cells (0 for default)")
	flag.StringVar(&spawnOverride, "spawn", "", `Spawn override: "center" or "x,y" (untrusted, falls back silently)`)
	flag.Parse()

	logger.Log.Info("Starting Fogwalker...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	cfg.SpawnOverride = spawnOverride

	port := os.Getenv("FW_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом.
	// Ошибка генерации — это ошибка конфигурации, стартовать нечему.
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("World generation failed: ", err)
	}
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	gameService.Stop()
	logger.Log.Info("Done.")
}
