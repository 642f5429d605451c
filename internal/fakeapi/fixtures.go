package fakeapi

import (
	"fmt"
	"strings"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
)

const (
	userCount    = 10
	postCount    = 100
	commentCount = 500
	albumCount   = 50
	photoCount   = 250
	todoCount    = 200
)

var loremWords = []string{
	"sunt", "aut", "facere", "repellat", "provident", "occaecati",
	"excepturi", "optio", "reprehenderit", "quia", "et", "suscipit",
	"recusandae", "consequuntur", "expedita", "quam", "nostrum", "rerum",
	"est", "autem", "sequi", "nesciunt", "voluptatem", "accusantium",
}

// store holds the fixture dataset. It is built once and never mutated
// afterwards, so handlers share it without locking. IDs are assigned
// contiguously from 1, which find relies on.
type store struct {
	Users    []placeholder.User
	Posts    []placeholder.Post
	Comments []placeholder.Comment
	Albums   []placeholder.Album
	Photos   []placeholder.Photo
	Todos    []placeholder.Todo
}

// newStore builds the dataset with the same parent/child ratios as the
// public sandbox: each user owns 10 posts, 5 albums, and 20 todos; each
// post has 5 comments; each album has 5 photos.
func newStore() *store {
	s := &store{
		Users:    make([]placeholder.User, 0, userCount),
		Posts:    make([]placeholder.Post, 0, postCount),
		Comments: make([]placeholder.Comment, 0, commentCount),
		Albums:   make([]placeholder.Album, 0, albumCount),
		Photos:   make([]placeholder.Photo, 0, photoCount),
		Todos:    make([]placeholder.Todo, 0, todoCount),
	}

	for i := 1; i <= userCount; i++ {
		s.Users = append(s.Users, placeholder.User{
			ID:       i,
			Name:     fmt.Sprintf("User %d", i),
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Address: placeholder.Address{
				Street:  fmt.Sprintf("%d Main Street", 100+i),
				Suite:   fmt.Sprintf("Apt. %d", i),
				City:    "Gwenborough",
				Zipcode: fmt.Sprintf("%05d", 92990+i),
				Geo: placeholder.Geo{
					Lat: fmt.Sprintf("%.4f", -37.3159+float64(i)),
					Lng: fmt.Sprintf("%.4f", 81.1496+float64(i)),
				},
			},
			Phone:   fmt.Sprintf("1-770-736-80%02d", i),
			Website: fmt.Sprintf("user%d.example.org", i),
			Company: placeholder.Company{
				Name:        fmt.Sprintf("Acme %d", i),
				CatchPhrase: lorem(i, 4),
				BS:          lorem(i*2, 3),
			},
		})
	}

	for i := 1; i <= postCount; i++ {
		s.Posts = append(s.Posts, placeholder.Post{
			UserID: (i-1)/10 + 1,
			ID:     i,
			Title:  lorem(i, 3+i%5),
			Body:   lorem(i*3, 12),
		})
	}

	for i := 1; i <= commentCount; i++ {
		s.Comments = append(s.Comments, placeholder.Comment{
			PostID: (i-1)/5 + 1,
			ID:     i,
			Name:   lorem(i, 4),
			Email:  fmt.Sprintf("commenter%d@example.com", i),
			Body:   lorem(i*2, 10),
		})
	}

	for i := 1; i <= albumCount; i++ {
		s.Albums = append(s.Albums, placeholder.Album{
			UserID: (i-1)/5 + 1,
			ID:     i,
			Title:  lorem(i, 2+i%3),
		})
	}

	for i := 1; i <= photoCount; i++ {
		color := (i * 8191) % 0x1000000
		s.Photos = append(s.Photos, placeholder.Photo{
			AlbumID:      (i-1)/5 + 1,
			ID:           i,
			Title:        lorem(i, 3),
			URL:          fmt.Sprintf("https://via.placeholder.com/600/%06x", color),
			ThumbnailURL: fmt.Sprintf("https://via.placeholder.com/150/%06x", color),
		})
	}

	for i := 1; i <= todoCount; i++ {
		s.Todos = append(s.Todos, placeholder.Todo{
			UserID:    (i-1)/20 + 1,
			ID:        i,
			Title:     lorem(i, 4),
			Completed: i%3 == 0,
		})
	}

	return s
}

// lorem builds a deterministic pseudo-latin phrase.
func lorem(seed, words int) string {
	out := make([]string, words)
	for i := range out {
		out[i] = loremWords[(seed+i*7)%len(loremWords)]
	}
	return strings.Join(out, " ")
}
