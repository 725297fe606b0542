package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"paranoid-users/internal/core/auth"
	"paranoid-users/internal/core/bootstrap"
)

func newTokenCmd(e *env) *cobra.Command {
	var uid, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a JWT for the admin api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := bootstrap.JWTer(e.cfg.JWT).Issue(uid, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "ops", "subject of the token")
	cmd.Flags().StringVar(&role, "role", auth.RoleAdmin, "role claim")
	return cmd
}
