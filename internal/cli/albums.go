package cli

import (
	"github.com/spf13/cobra"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

var albumUser int

var albumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "Browse albums and photos",
}

var albumsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List albums, optionally filtered by owner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		var res result.Result[[]placeholder.Album]
		if albumUser > 0 {
			res = svc.Albums.ByUser(cmd.Context(), albumUser)
		} else {
			res = svc.Albums.List(cmd.Context())
		}
		return printResult(cmd.OutOrStdout(), res, renderAlbums)
	},
}

var albumsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single album",
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
		return printResult(cmd.OutOrStdout(), svc.Albums.Get(cmd.Context(), id), renderAlbum)
	},
}

var albumsPhotosCmd = &cobra.Command{
	Use:   "photos <id>",
	Short: "List the photos in an album",
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
		return printResult(cmd.OutOrStdout(), svc.Albums.Photos(cmd.Context(), id), renderPhotos)
	},
}

func init() {
	albumsListCmd.Flags().IntVar(&albumUser, "user", 0, "filter by owner user id")

	albumsCmd.AddCommand(albumsListCmd, albumsGetCmd, albumsPhotosCmd)
	rootCmd.AddCommand(albumsCmd)
}
