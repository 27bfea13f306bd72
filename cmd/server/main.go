package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexTLDR/valentine/internal/config"
	"github.com/AlexTLDR/valentine/internal/database"
	"github.com/AlexTLDR/valentine/internal/logger"
	"github.com/AlexTLDR/valentine/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "valentine",
	Short:         "Valentine's Day invitation site",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate, seed and serve the site (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply migrations and seed the default content, then exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("database-url", "", "database file or DSN (overrides DATABASE_URL)")
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().String("port", "", "listen port (overrides PORT)")
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, exportCmd)
}

func main() {
	// Load .env file (ignore error if a file doesn't exist)
	// Use Overload to force to overwrite any existing environment variables
	if err := godotenv.Overload(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds what every command needs
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *database.DB
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		_ = zlog.Sync()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &app{cfg: cfg, log: zlog, db: db}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Error("failed to close database", zap.Error(err))
	}
	_ = a.log.Sync()
}

// prepare runs migrations and seeds the default notes and memories
func (a *app) prepare(ctx context.Context) error {
	if err := a.db.Migrate(ctx, a.log); err != nil {
		return err
	}

	seeded, err := a.db.Seed(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	a.log.Info("database ready",
		zap.String("driver", a.db.Driver()),
		zap.Int("seeded_notes", seeded.Notes),
		zap.Int("seeded_memories", seeded.Memories),
	)
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.prepare(ctx); err != nil {
		return err
	}

	if a.cfg.EphemeralSession {
		a.log.Warn("SESSION_SECRET not set, using a random key; sessions reset on restart")
	}

	srv := server.New(a.cfg, a.db, a.log)
	if err := srv.Start(ctx, a.cfg.Addr()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	return a.prepare(cmd.Context())
}
