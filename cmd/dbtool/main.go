package main

import (
	"context"
	"fmt"
	"migros-delivery/internal/adapters/input"
	"migros-delivery/internal/adapters/repositories"
	"migros-delivery/internal/config"
	"migros-delivery/internal/platform/db"
	"migros-delivery/internal/platform/logging"
	"os"
)

const usage = `usage: dbtool <command>

commands:
  init     create the schema and seed points from INPUT_PATH
  export   print the stored points in the input file format`

func main() {
	config.LoadDotEnv()

	log, err := logging.NewConsole(config.Get("LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := log.WithContext(context.Background())

	dbPath := config.Get("DB_PATH", "data/app.db")
	sqlite, err := db.OpenSQLite(ctx, dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open sqlite")
	}
	defer sqlite.Close()

	switch os.Args[1] {
	case "init":
		inputPath := config.Get("INPUT_PATH", config.DefaultInputPath)
		if len(os.Args) > 2 {
			inputPath = os.Args[2]
		}

		log.Info().Msg("Initializing database schema...")
		if err := repositories.InitSchema(ctx, sqlite); err != nil {
			log.Fatal().Err(err).Msg("schema initialization failed")
		}
		log.Info().Msg("Schema ready.")

		log.Info().Str("input", inputPath).Msg("Seeding database...")
		n, err := repositories.SeedFromFile(ctx, sqlite, inputPath)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
		log.Info().Int("points", n).Msg("Seeding complete.")

		if url := config.Get("DATABASE_URL", ""); url != "" {
			pg, err := db.Open(ctx, url)
			if err != nil {
				log.Fatal().Err(err).Msg("open postgres")
			}
			defer pg.Close()

			if err := repositories.InitSQLSchema(ctx, pg); err != nil {
				log.Fatal().Err(err).Msg("postgres schema initialization failed")
			}
			log.Info().Msg("Postgres run history schema ready.")
		}

	case "export":
		points, err := repositories.NewSqlitePointRepository(sqlite).ListPoints(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("list points failed")
		}
		if err := input.Write(os.Stdout, points); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
