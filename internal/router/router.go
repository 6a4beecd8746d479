package router

import (
	"encoding/json"
	"net/http"

	_ "zoo-records/docs"
	"zoo-records/internal/adapters/storage/memory"
	"zoo-records/internal/domain/animals"
	"zoo-records/internal/domain/employees"
	"zoo-records/internal/domain/records"
	"zoo-records/internal/middleware"
	"zoo-records/internal/platform/logger"
	"zoo-records/internal/platform/metrics"
	"zoo-records/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Services ya construidos (main). Si faltan, se arman sobre Blob.
	Animals   *animals.Service
	Employees *employees.Service

	// Opcional: si no viene, in-memory.
	Blob         blob.Store
	AnimalsKey   string
	EmployeesKey string

	Logger  logger.Logger    // nil => descarta logs
	Metrics *metrics.Metrics // nil => registry propio
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	animalsSvc, employeesSvc := opts.Animals, opts.Employees
	if animalsSvc == nil || employeesSvc == nil {
		b := opts.Blob
		if b == nil {
			b = memory.NewStore()
		}
		if animalsSvc == nil {
			animalsSvc = animals.NewService(animals.NewRepository(b, records.Options{Key: opts.AnimalsKey, Observer: m}))
		}
		if employeesSvc == nil {
			employeesSvc = employees.NewService(employees.NewRepository(b, records.Options{Key: opts.EmployeesKey, Observer: m}))
		}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.Recover(log))

	// antes de registrar rutas: Mount copia estos handlers a los subrouters
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<p> hello world </p>"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, log)
	employees.RegisterRoutes(r, employeesSvc, log)

	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
