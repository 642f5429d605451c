package fakeapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
)

func (s *Server) registerRoutes() {
	e := s.engine

	e.GET("/health", s.health)

	e.GET("/posts", listOf(s.store.Posts, "userId", func(p placeholder.Post) int { return p.UserID }))
	e.GET("/posts/:id", getOf(s.store.Posts))
	e.GET("/posts/:id/comments", childrenOf(s.store.Comments, func(c placeholder.Comment) int { return c.PostID }))
	e.POST("/posts", s.createPost)
	e.PUT("/posts/:id", updateOf(len(s.store.Posts)))
	e.DELETE("/posts/:id", deleteStub)

	e.GET("/comments", listOf(s.store.Comments, "postId", func(c placeholder.Comment) int { return c.PostID }))
	e.GET("/comments/:id", getOf(s.store.Comments))

	e.GET("/albums", listOf(s.store.Albums, "userId", func(a placeholder.Album) int { return a.UserID }))
	e.GET("/albums/:id", getOf(s.store.Albums))
	e.GET("/albums/:id/photos", childrenOf(s.store.Photos, func(p placeholder.Photo) int { return p.AlbumID }))

	e.GET("/photos", listOf(s.store.Photos, "albumId", func(p placeholder.Photo) int { return p.AlbumID }))
	e.GET("/photos/:id", getOf(s.store.Photos))

	e.GET("/todos", listOf(s.store.Todos, "userId", func(t placeholder.Todo) int { return t.UserID }))
	e.GET("/todos/:id", getOf(s.store.Todos))

	e.GET("/users", allOf(s.store.Users))
	e.GET("/users/:id", getOf(s.store.Users))
	e.GET("/users/:id/posts", childrenOf(s.store.Posts, func(p placeholder.Post) int { return p.UserID }))
	e.GET("/users/:id/todos", childrenOf(s.store.Todos, func(t placeholder.Todo) int { return t.UserID }))
	e.GET("/users/:id/albums", childrenOf(s.store.Albums, func(a placeholder.Album) int { return a.UserID }))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "fakeapi",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"counts": gin.H{
			"users":    len(s.store.Users),
			"posts":    len(s.store.Posts),
			"comments": len(s.store.Comments),
			"albums":   len(s.store.Albums),
			"photos":   len(s.store.Photos),
			"todos":    len(s.store.Todos),
		},
	})
}

// createPost echoes the submitted body back with the next post id,
// without persisting anything. With 100 fixture posts that id is 101,
// matching the public sandbox.
func (s *Server) createPost(c *gin.Context) {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	body["id"] = len(s.store.Posts) + 1
	c.JSON(http.StatusCreated, body)
}

// allOf serves the full fixture slice.
func allOf[T any](items []T) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, items)
	}
}

// listOf serves the fixture slice, narrowed by an integer query filter
// when present. A non-matching or malformed filter yields an empty
// list, like the public sandbox.
func listOf[T any](items []T, filterKey string, keyOf func(T) int) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query(filterKey)
		if raw == "" {
			c.JSON(http.StatusOK, items)
			return
		}
		key, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusOK, []T{})
			return
		}
		out := make([]T, 0)
		for _, item := range items {
			if keyOf(item) == key {
				out = append(out, item)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOf serves a single fixture by the :id path parameter, answering
// 404 with an empty object for unknown ids.
func getOf[T any](items []T) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := find(items, c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// childrenOf serves the fixtures whose parent id matches the :id path
// parameter. Unknown parents yield an empty list.
func childrenOf[T any](items []T, parentOf func(T) int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		out := make([]T, 0)
		for _, item := range items {
			if parentOf(item) == id {
				out = append(out, item)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// updateOf echoes the submitted body back under the path id without
// persisting, answering 404 for ids outside the fixture range.
func updateOf(count int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 || id > count {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		body := map[string]any{}
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		body["id"] = id
		c.JSON(http.StatusOK, body)
	}
}

// deleteStub acknowledges the delete with an empty object, persisting
// nothing.
func deleteStub(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// find looks a fixture up by its string id. Fixture ids run 1..len
// contiguously, so the lookup is a bounds-checked index.
func find[T any](items []T, rawID string) (T, bool) {
	var zero T
	id, err := strconv.Atoi(rawID)
	if err != nil || id < 1 || id > len(items) {
		return zero, false
	}
	return items[id-1], true
}
