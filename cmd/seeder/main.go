package main

import (
	"os"

	"sales-performance-backend/config"
	"sales-performance-backend/internal/database"
	"sales-performance-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

func main() {
	// Load .env manual karena ini script terpisah
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, true)
	if envErr != nil {
		logger.Log.Warn().Msg("File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cmdApp := cli.NewApp()
	cmdApp.Name = "seeder"
	cmdApp.Usage = "migrasi & seed database sales dashboard"
	cmdApp.Commands = []cli.Command{
		{
			Name:  "db:migrate",
			Usage: "buat / sesuaikan tabel",
			Action: func(c *cli.Context) error {
				db, err := config.ConnectDB(cfg)
				if err != nil {
					return err
				}
				if err := config.Migrate(db); err != nil {
					return err
				}
				logger.Log.Info().Msg("migrasi selesai")
				return nil
			},
		},
		{
			Name:  "db:seed",
			Usage: "isi master SPV, akun contoh, dan target contoh",
			Action: func(c *cli.Context) error {
				db, err := config.ConnectDB(cfg)
				if err != nil {
					return err
				}
				if err := config.Migrate(db); err != nil {
					return err
				}
				if err := database.SeedAll(db); err != nil {
					return err
				}
				logger.Log.Info().Msg("seeding selesai")
				return nil
			},
		},
	}

	if err := cmdApp.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("perintah gagal")
	}
}
