package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Render writes the report as aligned text tables.
func Render(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	fmt.Fprintf(tw, "Generated\t%s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(tw, "Users\t%d\n", r.Users)
	fmt.Fprintf(tw, "Posts\t%d\n", r.Posts)
	fmt.Fprintf(tw, "Comments\t%d\n", r.Comments)
	fmt.Fprintf(tw, "Todos\t%d\n", r.Todos)
	fmt.Fprintf(tw, "Avg comments per post\t%.2f\n", r.AvgCommentsPerPost)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TOP AUTHORS")
	fmt.Fprintln(tw, "USER\tUSERNAME\tPOSTS")
	for _, a := range r.TopAuthors {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", a.UserID, a.Username, a.Posts)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TODO COMPLETION")
	fmt.Fprintln(tw, "USER\tUSERNAME\tDONE\tTOTAL\tRATE")
	for _, c := range r.Completion {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.0f%%\n", c.UserID, c.Username, c.Done, c.Total, c.Rate*100)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "LONGEST TITLES")
	fmt.Fprintln(tw, "POST\tLENGTH\tTITLE")
	for _, t := range r.LongestTitles {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", t.PostID, t.Length, t.Title)
	}

	return tw.Flush()
}
