package cli

import (
	"github.com/spf13/cobra"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

var todoUser int

var todosCmd = &cobra.Command{
	Use:   "todos",
	Short: "Browse todos",
}

var todosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos, optionally filtered by owner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		var res result.Result[[]placeholder.Todo]
		if todoUser > 0 {
			res = svc.Todos.ByUser(cmd.Context(), todoUser)
		} else {
			res = svc.Todos.List(cmd.Context())
		}
		return printResult(cmd.OutOrStdout(), res, renderTodos)
	},
}

var todosGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single todo",
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
		return printResult(cmd.OutOrStdout(), svc.Todos.Get(cmd.Context(), id), renderTodo)
	},
}

func init() {
	todosListCmd.Flags().IntVar(&todoUser, "user", 0, "filter by owner user id")

	todosCmd.AddCommand(todosListCmd, todosGetCmd)
	rootCmd.AddCommand(todosCmd)
}
