// Command migrate applies the goose SQL migrations for the API schema.
//
//	go run ./cmd/migrate -cmd up
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ruvello/export-api/pkg/config"
	"github.com/ruvello/export-api/pkg/logger"
)

const defaultDir = "internal/infrastructure/postgres/migrations"

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version")
	dir := flag.String("dir", defaultDir, "goose migrations directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	dsn := cfg.DB.DatabaseURL
	if dsn == "" {
		dsn = cfg.DB.DSN()
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("set goose dialect")
	}
	if err := goose.Run(*cmd, db, *dir, flag.Args()...); err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("migration failed")
	}
	log.Info().Str("cmd", *cmd).Msg("migration complete")
}
