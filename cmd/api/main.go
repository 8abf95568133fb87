package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	apimodel "revenue_model/pkg/api/model"
)

type serverConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

func loadConfig() serverConfig {
	cfg := serverConfig{Addr: ":8080", LogLevel: "info"}
	if data, err := os.ReadFile("config/server.yaml"); err == nil {
		// Config file is optional; defaults apply when absent.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] config/server.yaml: %v\n", err)
		}
	}
	if addr := os.Getenv("REVENUE_MODEL_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	return cfg
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Printf("[FATAL] logger init: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func main() {
	godotenv.Load()

	cfg := loadConfig()
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	apimodel.InitHandler(logger)

	mux := http.NewServeMux()
	apimodel.Register(mux)

	logger.Info("API server starting",
		zap.String("addr", cfg.Addr))
	logger.Info("endpoints registered",
		zap.Strings("routes", []string{
			"POST /api/model/projection",
			"POST /api/model/tco",
			"POST /api/model/revenue",
			"POST /api/model/breakeven",
			"POST /api/model/recommendations",
			"POST /api/model/sensitivity",
		}))

	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
