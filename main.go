package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"todo-admin/config"
	"todo-admin/handlers"
	"todo-admin/repository"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the todo-admin command. Flags are bound into viper so
// they override environment and config file values.
func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:          "todo-admin",
		Short:        "Single-admin to-do list server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return serve(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a YAML config file")
	flags.Int("port", 3000, "port to listen on (env PORT)")
	flags.String("db", "./todo.db", "database file (env DB_PATH)")
	flags.String("static-dir", ".", "directory served as static files (env STATIC_DIR)")
	flags.String("log-level", "info", "debug, info, warn or error (env LOG_LEVEL)")

	bindFlag(v, config.KeyPort, cmd, "port")
	bindFlag(v, config.KeyDBPath, cmd, "db")
	bindFlag(v, config.KeyStaticDir, cmd, "static-dir")
	bindFlag(v, config.KeyLogLevel, cmd, "log-level")

	return cmd
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func serve(cmd *cobra.Command, cfg *config.Config) error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	logger.Info("using database", "path", cfg.DBPath)

	db, err := repository.Open(cmd.Context(), cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// A failed bootstrap leaves the server up; affected requests fail individually.
	if err := repository.Bootstrap(cmd.Context(), db); err != nil {
		logger.Error("database bootstrap failed", "error", err)
	} else {
		logger.Info("database initialized successfully")
	}

	todoHandler := handlers.NewTodoHandler(repository.NewTodoRepository(db), logger)
	authHandler := handlers.NewAuthHandler(repository.NewUserRepository(db), logger)

	r := newRouter(todoHandler, authHandler, cfg.StaticDir, cfg.DBPath, logger)

	logger.Info("server starting", "port", cfg.Port, "static_dir", cfg.StaticDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Server running at http://localhost:%d\n", cfg.Port)

	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		logger.Error("server stopped", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
