package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

var (
	postUser  int
	postTitle string
	postBody  string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Browse and edit posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, optionally filtered by author",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		var res result.Result[[]placeholder.Post]
		if postUser > 0 {
			res = svc.Posts.ByUser(cmd.Context(), postUser)
		} else {
			res = svc.Posts.List(cmd.Context())
		}
		return printResult(cmd.OutOrStdout(), res, renderPosts)
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single post",
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
		return printResult(cmd.OutOrStdout(), svc.Posts.Get(cmd.Context(), id), renderPost)
	},
}

var postsCommentsCmd = &cobra.Command{
	Use:   "comments <id>",
	Short: "List the comments on a post",
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
		return printResult(cmd.OutOrStdout(), svc.Posts.Comments(cmd.Context(), id), renderComments)
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		post := placeholder.Post{UserID: postUser, Title: postTitle, Body: postBody}
		return printResult(cmd.OutOrStdout(), svc.Posts.Create(cmd.Context(), post), renderPost)
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a post",
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
		post := placeholder.Post{UserID: postUser, Title: postTitle, Body: postBody}
		return printResult(cmd.OutOrStdout(), svc.Posts.Update(cmd.Context(), id, post), renderPost)
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
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
		return printResult(cmd.OutOrStdout(), svc.Posts.Delete(cmd.Context(), id),
			func(w io.Writer, _ result.Unit) error {
				_, err := fmt.Fprintf(w, "deleted post %d\n", id)
				return err
			})
	},
}

func init() {
	postsListCmd.Flags().IntVar(&postUser, "user", 0, "filter by author user id")

	for _, c := range []*cobra.Command{postsCreateCmd, postsUpdateCmd} {
		c.Flags().IntVar(&postUser, "user", 0, "author user id")
		c.Flags().StringVar(&postTitle, "title", "", "post title")
		c.Flags().StringVar(&postBody, "body", "", "post body")
	}

	postsCmd.AddCommand(postsListCmd, postsGetCmd, postsCommentsCmd, postsCreateCmd, postsUpdateCmd, postsDeleteCmd)
	rootCmd.AddCommand(postsCmd)
}
