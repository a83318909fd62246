// mockapi levanta un backend simulado de clientes (/api/clientes/, /api/tipos-documento/,
// /api/download/) para desarrollo y pruebas de la tabla. Usa PostgreSQL si DATABASE_URL o
// DB_HOST están definidos; si no, un store en memoria (SEED_FILE o datos de ejemplo).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/usecase"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/repository"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/export"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/memory"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tabla-fidelizacion/internal/interfaces/http"
	"github.com/jhoicas/tabla-fidelizacion/pkg/config"
	"github.com/jhoicas/tabla-fidelizacion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando backend simulado")

	ctx := context.Background()

	var repo repository.CustomerRepository
	switch {
	case cfg.DB.Enabled():
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema")
		}
		seeded, err := postgres.SeedIfEmpty(ctx, pool, memory.DefaultDocumentTypes(), memory.DefaultCustomers())
		if err != nil {
			log.Fatal().Err(err).Msg("datos de ejemplo")
		}
		log.Info().Bool("seeded", seeded).Msg("store PostgreSQL")
		repo = postgres.NewCustomerRepository(pool)
	case cfg.HTTP.SeedFile != "":
		memRepo, err := memory.LoadSeedFile(cfg.HTTP.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("seed", cfg.HTTP.SeedFile).Msg("cargar seed")
		}
		log.Info().Str("seed", cfg.HTTP.SeedFile).Msg("store en memoria")
		repo = memRepo
	default:
		log.Info().Msg("store en memoria con datos de ejemplo")
		repo = memory.NewCustomerRepository(memory.DefaultDocumentTypes(), memory.DefaultCustomers())
	}

	customerUC := usecase.NewCustomerUseCase(repo, export.NewGenerator())
	app := httpRouter.NewApp(httpRouter.RouterDeps{
		CustomerUC: customerUC,
		Log:        log,
		AppName:    cfg.App.Name,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("backend detenido")
}
