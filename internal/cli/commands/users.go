package commands

import (
	"github.com/spf13/cobra"

	"paranoid-users/internal/service"
)

func newUsersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user records",
	}

	create := &cobra.Command{
		Use:   "create <firstName> <lastName>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.users()
			if err != nil {
				return err
			}
			u, err := svc.Create(cmd.Context(), service.CreateUserInput{FirstName: args[0], LastName: args[1]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every user, soft-deleted included, with price stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.users()
			if err != nil {
				return err
			}
			res, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	var withDeleted bool
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.users()
			if err != nil {
				return err
			}
			get := svc.Get
			if withDeleted {
				get = svc.GetAny
			}
			u, err := get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
	get.Flags().BoolVar(&withDeleted, "with-deleted", false, "include soft-deleted users")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.users()
			if err != nil {
				return err
			}
			if err := svc.SoftDelete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"id": args[0]})
		},
	}

	purge := &cobra.Command{
		Use:   "purge <id>",
		Short: "Permanently delete an active user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.users()
			if err != nil {
				return err
			}
			if err := svc.HardDelete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"id": args[0]})
		},
	}

	restore := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.users()
			if err != nil {
				return err
			}
			u, err := svc.Restore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}

	cmd.AddCommand(create, list, get, del, purge, restore)
	return cmd
}
