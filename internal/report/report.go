// Package report derives an aggregate snapshot of the JSONPlaceholder
// dataset: who posts the most, who finishes their todos, which titles
// run longest, and how commented the average post is.
package report

import (
	"context"
	"sort"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/util"
)

// topN bounds the leaderboard sections.
const topN = 5

// AuthorStat ranks a user by post count.
type AuthorStat struct {
	UserID   int
	Username string
	Posts    int
}

// CompletionStat is a user's todo completion rate.
type CompletionStat struct {
	UserID   int
	Username string
	Done     int
	Total    int
	Rate     float64
}

// TitleStat is one of the longest post titles.
type TitleStat struct {
	PostID int
	UserID int
	Length int
	Title  string
}

// Report is an aggregate snapshot of the dataset.
type Report struct {
	GeneratedAt time.Time

	Users    int
	Posts    int
	Comments int
	Todos    int

	TopAuthors         []AuthorStat
	Completion         []CompletionStat
	LongestTitles      []TitleStat
	AvgCommentsPerPost float64
}

// Build fetches posts, users, todos, and comments concurrently and
// derives the report. The first failed fetch cancels the rest and is
// returned with its classification intact.
func Build(ctx context.Context, svc *placeholder.Service) result.Result[Report] {
	var (
		posts    []placeholder.Post
		users    []placeholder.User
		todos    []placeholder.Todo
		comments []placeholder.Comment
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = svc.Posts.List(ctx).Unpack()
		return err
	})
	g.Go(func() error {
		var err error
		users, err = svc.Users.List(ctx).Unpack()
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = svc.Todos.List(ctx).Unpack()
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = svc.Comments.List(ctx).Unpack()
		return err
	})
	if err := g.Wait(); err != nil {
		return result.Fail[Report](result.FromError(err))
	}

	return result.Ok(build(posts, users, todos, comments))
}

// build runs the pure aggregations over already-fetched slices.
func build(posts []placeholder.Post, users []placeholder.User, todos []placeholder.Todo, comments []placeholder.Comment) Report {
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	postCounts := util.CountBy(posts, func(p placeholder.Post) int { return p.UserID })
	authors := make([]AuthorStat, 0, len(postCounts))
	for userID, count := range postCounts {
		authors = append(authors, AuthorStat{UserID: userID, Username: names[userID], Posts: count})
	}
	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Posts != authors[j].Posts {
			return authors[i].Posts > authors[j].Posts
		}
		return authors[i].UserID < authors[j].UserID
	})
	if len(authors) > topN {
		authors = authors[:topN]
	}

	todosByUser := util.GroupBy(todos, func(t placeholder.Todo) int { return t.UserID })
	completion := make([]CompletionStat, 0, len(todosByUser))
	for userID, userTodos := range todosByUser {
		done := len(util.Filter(userTodos, func(t placeholder.Todo) bool { return t.Completed }))
		completion = append(completion, CompletionStat{
			UserID:   userID,
			Username: names[userID],
			Done:     done,
			Total:    len(userTodos),
			Rate:     float64(done) / float64(len(userTodos)),
		})
	}
	sort.Slice(completion, func(i, j int) bool {
		if completion[i].Rate != completion[j].Rate {
			return completion[i].Rate > completion[j].Rate
		}
		return completion[i].UserID < completion[j].UserID
	})

	titles := util.Map(posts, func(p placeholder.Post) TitleStat {
		return TitleStat{
			PostID: p.ID,
			UserID: p.UserID,
			Length: utf8.RuneCountInString(p.Title),
			Title:  p.Title,
		}
	})
	sort.Slice(titles, func(i, j int) bool {
		if titles[i].Length != titles[j].Length {
			return titles[i].Length > titles[j].Length
		}
		return titles[i].PostID < titles[j].PostID
	})
	if len(titles) > topN {
		titles = titles[:topN]
	}

	avgComments := 0.0
	if len(posts) > 0 {
		avgComments = float64(len(comments)) / float64(len(posts))
	}

	return Report{
		GeneratedAt:        time.Now().UTC(),
		Users:              len(users),
		Posts:              len(posts),
		Comments:           len(comments),
		Todos:              len(todos),
		TopAuthors:         authors,
		Completion:         completion,
		LongestTitles:      titles,
		AvgCommentsPerPost: avgComments,
	}
}
