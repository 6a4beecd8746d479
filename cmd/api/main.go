package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zoo-records/internal/adapters/storage"
	"zoo-records/internal/domain/animals"
	"zoo-records/internal/domain/employees"
	"zoo-records/internal/domain/records"
	"zoo-records/internal/platform/config"
	"zoo-records/internal/platform/httpclient"
	"zoo-records/internal/platform/logger"
	"zoo-records/internal/platform/metrics"
	"zoo-records/internal/router"
)

// @title Zoo Records API
// @version 1.0
// @description CRUD de animales y empleados persistidos como documentos JSON.
// @BasePath /
func main() {
	healthcheck := flag.Bool("healthcheck", false, "GET /health contra el server local y salir (0 ok, 1 error)")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *healthcheck {
		os.Exit(runHealthcheck(cfg))
	}

	log := logger.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.AppName)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Warn("close storage", map[string]any{"error": err.Error()})
		}
	}()

	// Un Record Store por colección, construidos acá e inyectados al router.
	m := metrics.New()
	animalsSvc := animals.NewService(animals.NewRepository(b, records.Options{Key: cfg.AnimalsKey, Observer: m}))
	employeesSvc := employees.NewService(employees.NewRepository(b, records.Options{Key: cfg.EmployeesKey, Observer: m}))

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: router.NewRouter(router.Options{
			Animals:   animalsSvc,
			Employees: employeesSvc,
			Logger:    log,
			Metrics:   m,
		}),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":          cfg.Addr,
			"store_driver":  string(b.Driver()),
			"animals_key":   cfg.AnimalsKey,
			"employees_key": cfg.EmployeesKey,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runHealthcheck(cfg config.Config) int {
	c, err := httpclient.New("http://127.0.0.1"+cfg.Addr, 3*time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.Health(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck failed:", err)
		return 1
	}
	return 0
}
