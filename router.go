package main

import (
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"todo-admin/handlers"
	"todo-admin/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// newRouter wires middleware, API routes, and the static file server.
// dbPath names the database file so it is never served; empty disables the check.
func newRouter(todoHandler *handlers.TodoHandler, authHandler *handlers.AuthHandler, staticDir, dbPath string, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))

	// Any origin may call the API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/*", staticFiles(staticDir, dbPath))

	return r
}

// staticFiles serves staticDir but answers 404 for the database file and
// its -wal, -shm and -journal companions.
func staticFiles(staticDir, dbPath string) http.Handler {
	files := http.FileServer(http.Dir(staticDir))
	if dbPath == "" {
		return files
	}

	hidden, err := filepath.Abs(dbPath)
	if err != nil {
		hidden = filepath.Clean(dbPath)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if abs, err := filepath.Abs(name); err == nil && isDatabaseFile(abs, hidden) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func isDatabaseFile(name, dbPath string) bool {
	if name == dbPath {
		return true
	}
	suffix, ok := strings.CutPrefix(name, dbPath)
	return ok && (suffix == "-wal" || suffix == "-shm" || suffix == "-journal")
}
