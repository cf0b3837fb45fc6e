// Command dbtool manages the freight schema: migrate creates or updates the
// tables, seed loads deterministic demo data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"freight/cmd"
	"freight/internal/adapters/out/postgres"
	"freight/internal/seed"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v3"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.Command{
		Name:  "dbtool",
		Usage: "manage the freight database",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "create or update the schema",
				Action: func(ctx context.Context, _ *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					if err := postgres.Migrate(db); err != nil {
						return err
					}
					slogger.InfoContext(ctx, "Schema migrated")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "load demo nations, places and fleet",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "reset", Usage: "truncate every table before loading"},
					&cli.BoolFlag{Name: "small", Usage: "load a reduced dataset"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					if err := postgres.Migrate(db); err != nil {
						return err
					}
					if c.Bool("reset") {
						if err := db.Exec("TRUNCATE TABLE " + strings.Join(postgres.Tables, ", ")).Error; err != nil {
							return fmt.Errorf("reset: %w", err)
						}
					}

					opts := seed.DefaultOptions()
					if c.Bool("small") {
						opts.CitiesPerNation = 3
						opts.PlacesPerCity = 3
						opts.LocalServings = 60
						opts.Lorries = 15
						opts.Trains = 6
						opts.Planes = 2
						opts.Ships = 2
					}
					ds, err := seed.Generate(opts)
					if err != nil {
						return err
					}
					return seed.Load(ctx, postgres.NewGormUnitOfWorkFactory(db), ds, slogger)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("dbtool: %v", err)
	}
}

func open() (*gorm.DB, error) {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
