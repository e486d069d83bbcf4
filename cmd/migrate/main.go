package main

import (
	"errors"
	"flag"
	"log/slog"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"curateurs-backoffice/internal/config"
	"curateurs-backoffice/internal/infrastructure/database"
	"curateurs-backoffice/internal/logger"
)

func main() {
	flag.Usage = func() {
		logger.Info("usage: migrate [up|down|version|force N]")
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	dsn := database.PoolConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}.ConnString()

	m, err := migrate.New("file://"+cfg.MigrationsPath, dsn)
	if err != nil {
		logger.Fatal("Failed to create migrate instance", slog.String("error", err.Error()))
	}
	defer m.Close()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		var v int
		v, err = strconv.Atoi(flag.Arg(1))
		if err == nil {
			err = m.Force(v)
		}
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			logger.Fatal("Failed to read version", slog.String("error", verr.Error()))
		}
		logger.Info("Schema version", slog.Uint64("version", uint64(v)), slog.Bool("dirty", dirty))
		return
	default:
		flag.Usage()
		logger.Fatal("Unknown command", slog.String("command", cmd))
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Schema already up to date")
		return
	}
	if err != nil {
		logger.Fatal("Migration failed", slog.String("command", cmd), slog.String("error", err.Error()))
	}
	logger.Info("Migration applied", slog.String("command", cmd))
}
