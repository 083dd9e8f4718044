package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/config"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply every pending migration to the configured database.

Examples:
  palettes migrate
  DB_TYPE=sqlite3 DB_PATH=palettes.sqlite3 palettes migrate`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := datastore.NewDB(cfg.DatabaseType, cfg.ConnString())
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer db.Close()

	return migrations.RunMigrations(db, cfg.DatabaseType)
}
