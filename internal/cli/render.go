package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

const titleWidth = 60

// printResult renders an ok value with render, or reports the failure
// as the command error so cobra sets a non-zero exit code.
func printResult[T any](w io.Writer, res result.Result[T], render func(io.Writer, T) error) error {
	return result.Match(res,
		func(v T) error { return render(w, v) },
		func(f *result.Failure) error { return f },
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderPosts(w io.Writer, posts []placeholder.Post) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSER\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ID, p.UserID, truncate(p.Title, titleWidth))
	}
	return tw.Flush()
}

func renderPost(w io.Writer, p placeholder.Post) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", p.ID)
	fmt.Fprintf(tw, "User\t%d\n", p.UserID)
	fmt.Fprintf(tw, "Title\t%s\n", p.Title)
	fmt.Fprintf(tw, "Body\t%s\n", p.Body)
	return tw.Flush()
}

func renderComments(w io.Writer, comments []placeholder.Comment) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPOST\tEMAIL\tNAME")
	for _, c := range comments {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", c.ID, c.PostID, c.Email, truncate(c.Name, titleWidth))
	}
	return tw.Flush()
}

func renderUsers(w io.Writer, users []placeholder.User) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Name, u.Email)
	}
	return tw.Flush()
}

func renderUser(w io.Writer, u placeholder.User) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", u.ID)
	fmt.Fprintf(tw, "Name\t%s\n", u.Name)
	fmt.Fprintf(tw, "Username\t%s\n", u.Username)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "Phone\t%s\n", u.Phone)
	fmt.Fprintf(tw, "Website\t%s\n", u.Website)
	fmt.Fprintf(tw, "City\t%s\n", u.Address.City)
	fmt.Fprintf(tw, "Company\t%s\n", u.Company.Name)
	return tw.Flush()
}

func renderTodos(w io.Writer, todos []placeholder.Todo) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSER\tDONE\tTITLE")
	for _, td := range todos {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", td.ID, td.UserID, checkbox(td.Completed), truncate(td.Title, titleWidth))
	}
	return tw.Flush()
}

func renderTodo(w io.Writer, td placeholder.Todo) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", td.ID)
	fmt.Fprintf(tw, "User\t%d\n", td.UserID)
	fmt.Fprintf(tw, "Done\t%s\n", checkbox(td.Completed))
	fmt.Fprintf(tw, "Title\t%s\n", td.Title)
	return tw.Flush()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func renderAlbums(w io.Writer, albums []placeholder.Album) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSER\tTITLE")
	for _, a := range albums {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", a.ID, a.UserID, truncate(a.Title, titleWidth))
	}
	return tw.Flush()
}

func renderAlbum(w io.Writer, a placeholder.Album) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", a.ID)
	fmt.Fprintf(tw, "User\t%d\n", a.UserID)
	fmt.Fprintf(tw, "Title\t%s\n", a.Title)
	return tw.Flush()
}

func renderPhotos(w io.Writer, photos []placeholder.Photo) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tALBUM\tURL\tTITLE")
	for _, p := range photos {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", p.ID, p.AlbumID, p.URL, truncate(p.Title, 40))
	}
	return tw.Flush()
}
