// migrate aplica las migraciones goose embebidas sobre la base configurada.
//
// Uso: go run ./cmd/migrate -cmd up|down|status|version|create [-version V] [-name N]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jhoicas/inventario-lotes-api/pkg/config"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
	"github.com/jhoicas/inventario-lotes-api/pkg/migrate"
)

func main() {
	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "comando: up|down|status|version|create")
	name := flag.String("name", "", "nombre de la migración (create)")
	version := flag.String("version", "", "versión destino YYYYMMDDHHMMSS (version)")
	flag.Parse()

	dbCfg := config.LoadDB()
	log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: "info", Service: "migrate"})

	// create no necesita base de datos
	if *cmd == "create" {
		if err := migrate.Create(dbCfg.MigrationsDir, *name); err != nil {
			fmt.Fprintf(os.Stderr, "crear migración: %v\n", err)
			os.Exit(1)
		}
		return
	}

	db, err := migrate.Open(dbCfg.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer db.Close()

	ctx := context.Background()
	switch *cmd {
	case "up", "down", "status":
		err = migrate.Run(ctx, db, *cmd)
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "falta -version")
			os.Exit(1)
		}
		err = migrate.MigrateToVersion(ctx, db, *version)
	default:
		fmt.Fprintln(os.Stderr, "valor de -cmd desconocido:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", *cmd).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Str("cmd", *cmd).Msg("migración completada")
}
