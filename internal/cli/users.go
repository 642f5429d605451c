package cli

import (
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse users and their content",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), svc.Users.List(cmd.Context()), renderUsers)
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), svc.Users.Get(cmd.Context(), id), renderUser)
	},
}

var usersPostsCmd = &cobra.Command{
	Use:   "posts <id>",
	Short: "List a user's posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), svc.Users.Posts(cmd.Context(), id), renderPosts)
	},
}

var usersTodosCmd = &cobra.Command{
	Use:   "todos <id>",
	Short: "List a user's todos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), svc.Users.Todos(cmd.Context(), id), renderTodos)
	},
}

var usersAlbumsCmd = &cobra.Command{
	Use:   "albums <id>",
	Short: "List a user's albums",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), svc.Users.Albums(cmd.Context(), id), renderAlbums)
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersPostsCmd, usersTodosCmd, usersAlbumsCmd)
	rootCmd.AddCommand(usersCmd)
}
