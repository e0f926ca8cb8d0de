package main

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-catalog/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-catalog/pkg/config"
	"github.com/jhoicas/ecommerce-catalog/pkg/logger"
)

// Aplica las migraciones embebidas contra la base configurada y termina.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones al día")
}
