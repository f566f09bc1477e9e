package main

// @title Cadastre Search API
// @version 1.0.0
// @description Поиск по кадастровому реестру: уезды, самоуправления, староства, населенные пункты, улицы, адреса, помещения, участки и классификаторы участков.
// @description
// @description Группы фильтров объединяются через OR, условия внутри группы - через AND.
// @description Геометрия фильтров принимается в EWKB (hex), EWKT или GeoJSON и проверяется до выполнения поиска.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cadastre-search-api/docs/swagger"
	"github.com/cadastre-search-api/internal/config"
	httpDelivery "github.com/cadastre-search-api/internal/delivery/http"
	"github.com/cadastre-search-api/internal/pkg/logger"
	"github.com/cadastre-search-api/internal/repository/postgres"
	"github.com/cadastre-search-api/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cadastre Search API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int("max_page_size", cfg.Search.MaxPageSize),
	)

	// 3. Connect to PostGIS
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostGIS health check failed", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Initialize repositories and catalogs
	repo := postgres.NewCadastreRepository(db, cfg.Search.QueryTimeout)
	engine := postgres.NewSpatialEngine(db)

	catalogs, err := usecase.NewCatalogs(engine, repo, repo, log)
	if err != nil {
		log.Fatal("Failed to initialize catalogs", zap.Error(err))
	}
	log.Info("Catalogs initialized")

	// 5. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, catalogs, db)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
