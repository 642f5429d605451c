package placeholder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/apiclient"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

// Options configures a Service.
type Options struct {
	// CacheTTL bounds how long cached reads stay fresh. Non-positive
	// disables caching.
	CacheTTL time.Duration
}

// Service exposes typed access to every JSONPlaceholder resource.
type Service struct {
	Posts    *PostRepo
	Comments *CommentRepo
	Albums   *AlbumRepo
	Photos   *PhotoRepo
	Todos    *TodoRepo
	Users    *UserRepo
}

// New creates a Service over the given caller.
func New(caller apiclient.Caller, opts Options) *Service {
	ttl := opts.CacheTTL
	return &Service{
		Posts:    &PostRepo{Resource: NewResource[Post](caller, "/posts", ttl), caller: caller},
		Comments: &CommentRepo{Resource: NewResource[Comment](caller, "/comments", ttl)},
		Albums:   &AlbumRepo{Resource: NewResource[Album](caller, "/albums", ttl), caller: caller},
		Photos:   &PhotoRepo{Resource: NewResource[Photo](caller, "/photos", ttl)},
		Todos:    &TodoRepo{Resource: NewResource[Todo](caller, "/todos", ttl)},
		Users:    &UserRepo{Resource: NewResource[User](caller, "/users", ttl), caller: caller},
	}
}

// PostRepo accesses /posts.
type PostRepo struct {
	*Resource[Post]
	caller apiclient.Caller
}

// ByUser lists the posts written by a user.
func (r *PostRepo) ByUser(ctx context.Context, userID int) result.Result[[]Post] {
	return r.List(ctx, apiclient.WithQuery("userId", strconv.Itoa(userID)))
}

// Comments lists the comments attached to a post via the nested route.
func (r *PostRepo) Comments(ctx context.Context, postID int) result.Result[[]Comment] {
	return apiclient.GetList[Comment](ctx, r.caller, fmt.Sprintf("/posts/%d/comments", postID))
}

// CommentRepo accesses /comments.
type CommentRepo struct {
	*Resource[Comment]
}

// ByPost lists the comments attached to a post via the query filter.
func (r *CommentRepo) ByPost(ctx context.Context, postID int) result.Result[[]Comment] {
	return r.List(ctx, apiclient.WithQuery("postId", strconv.Itoa(postID)))
}

// AlbumRepo accesses /albums.
type AlbumRepo struct {
	*Resource[Album]
	caller apiclient.Caller
}

// ByUser lists the albums owned by a user.
func (r *AlbumRepo) ByUser(ctx context.Context, userID int) result.Result[[]Album] {
	return r.List(ctx, apiclient.WithQuery("userId", strconv.Itoa(userID)))
}

// Photos lists the photos inside an album via the nested route.
func (r *AlbumRepo) Photos(ctx context.Context, albumID int) result.Result[[]Photo] {
	return apiclient.GetList[Photo](ctx, r.caller, fmt.Sprintf("/albums/%d/photos", albumID))
}

// PhotoRepo accesses /photos.
type PhotoRepo struct {
	*Resource[Photo]
}

// ByAlbum lists the photos inside an album via the query filter.
func (r *PhotoRepo) ByAlbum(ctx context.Context, albumID int) result.Result[[]Photo] {
	return r.List(ctx, apiclient.WithQuery("albumId", strconv.Itoa(albumID)))
}

// TodoRepo accesses /todos.
type TodoRepo struct {
	*Resource[Todo]
}

// ByUser lists the todos assigned to a user.
func (r *TodoRepo) ByUser(ctx context.Context, userID int) result.Result[[]Todo] {
	return r.List(ctx, apiclient.WithQuery("userId", strconv.Itoa(userID)))
}

// UserRepo accesses /users.
type UserRepo struct {
	*Resource[User]
	caller apiclient.Caller
}

// Posts lists the posts written by a user via the nested route.
func (r *UserRepo) Posts(ctx context.Context, userID int) result.Result[[]Post] {
	return apiclient.GetList[Post](ctx, r.caller, fmt.Sprintf("/users/%d/posts", userID))
}

// Todos lists the todos assigned to a user via the nested route.
func (r *UserRepo) Todos(ctx context.Context, userID int) result.Result[[]Todo] {
	return apiclient.GetList[Todo](ctx, r.caller, fmt.Sprintf("/users/%d/todos", userID))
}

// Albums lists the albums owned by a user via the nested route.
func (r *UserRepo) Albums(ctx context.Context, userID int) result.Result[[]Album] {
	return apiclient.GetList[Album](ctx, r.caller, fmt.Sprintf("/users/%d/albums", userID))
}
