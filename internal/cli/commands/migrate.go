package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"paranoid-users/internal/feature/user"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Auto-migrate and verify the Users table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.cfg.DB.AutoMigrate = false
			db, err := e.openDB()
			if err != nil {
				return err
			}
			if err := user.Migrate(db); err != nil {
				return err
			}
			for _, c := range user.Columns {
				nullable := "NOT NULL"
				if c.Nullable {
					nullable = "NULL"
				}
				def := c.Default
				if def == "" {
					def = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-14s %-8s %s\n", c.Name, c.Type, nullable, def)
			}
			return nil
		},
	}
}
