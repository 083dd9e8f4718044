package cli

import (
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/api"
	"github.com/color-game/palettes/config"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/migrations"
	"github.com/color-game/palettes/scheduler"
	"github.com/color-game/palettes/shades"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API server.

Configuration comes from the environment and an optional .env file.
Pending migrations are applied before the server starts.

Examples:
  palettes serve
  DB_TYPE=sqlite3 DB_PATH=palettes.sqlite3 palettes serve`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Address to listen on, overrides HTTP_PORT")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.HTTPPort = servePort
	}

	db, err := datastore.NewDB(cfg.DatabaseType, cfg.ConnString())
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer db.Close()

	if err := migrations.RunMigrations(db, cfg.DatabaseType); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	userRepo, err := datastore.NewUserDatabase(db, cfg.DatabaseType)
	if err != nil {
		return errors.Wrap(err, "failed to create user repository")
	}
	paletteRepo, err := datastore.NewPaletteDatabase(db, cfg.DatabaseType)
	if err != nil {
		return errors.Wrap(err, "failed to create palette repository")
	}
	dailyPaletteRepo, err := datastore.NewDailyPaletteDatabase(db, cfg.DatabaseType)
	if err != nil {
		return errors.Wrap(err, "failed to create daily palette repository")
	}

	algorithm, err := shades.ParseAlgorithm(cfg.DefaultAlgorithm)
	if err != nil {
		return err
	}
	paletteScheduler := scheduler.NewScheduler(dailyPaletteRepo, algorithm)

	app := &api.Application{
		Config:           cfg,
		UserRepo:         userRepo,
		PaletteRepo:      paletteRepo,
		DailyPaletteRepo: dailyPaletteRepo,
		DailyGenerator:   paletteScheduler,
	}

	if cfg.DailyPaletteEnabled {
		paletteScheduler.Start()
		defer paletteScheduler.Stop()
	} else {
		log.Println("Daily palette scheduler disabled")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx, http.NewServeMux())
}
