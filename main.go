package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/camden-git/hackerdb/config"
	"github.com/camden-git/hackerdb/database"
	"github.com/camden-git/hackerdb/importer"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hackerdb <people.json> <hardware.json>",
		Short:         "Import people, skills and hardware into the hackers database",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			_, err = runImport(cfg, args[0], args[1])
			return err
		},
	}
	cmd.AddCommand(newMigrateCmd(), newServeCmd())
	return cmd
}

// runImport parses both documents before touching the store, so malformed
// input never opens a session.
func runImport(cfg config.Config, peoplePath, hardwarePath string) (importer.Result, error) {
	people, err := importer.LoadPeople(peoplePath)
	if err != nil {
		return importer.Result{}, err
	}
	hardware, err := importer.LoadHardware(hardwarePath)
	if err != nil {
		return importer.Result{}, err
	}

	log.Printf("Using database: %s", cfg.DatabasePath)
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return importer.Result{}, err
	}
	defer db.Close()

	if err := database.CheckSchema(db); err != nil {
		return importer.Result{}, err
	}

	return importer.New(db).Run(people, hardware)
}
