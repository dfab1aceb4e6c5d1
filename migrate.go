package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/camden-git/hackerdb/config"
	"github.com/camden-git/hackerdb/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Person, Skill, PersonSkill and Hardware tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runMigrate(cfg)
		},
	}
}

func runMigrate(cfg config.Config) error {
	log.Printf("Using database: %s", cfg.DatabasePath)
	gdb, err := database.InitGormDB(cfg.DatabasePath, database.ParseGormLogLevel(cfg.GormLogLevel))
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return database.AutoMigrateModels(gdb)
}
