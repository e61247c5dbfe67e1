package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/ui"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the sqlite tables and load the sample farm into empty ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.OpenSQLite(cfg.DBPath)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := database.Seed(db); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSeed, "Seeded "+cfg.DBPath))
			for _, t := range []struct {
				name  string
				model any
			}{
				{"fields", &entities.Field{}},
				{"crops", &entities.Crop{}},
				{"tasks", &entities.Task{}},
				{"expenses", &entities.Expense{}},
			} {
				var n int64
				if err := db.Model(t.model).Count(&n).Error; err != nil {
					return err
				}
				fmt.Fprintln(out, "  "+ui.LabelValue(t.name, n))
			}
			return nil
		},
	}
}
