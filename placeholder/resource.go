package placeholder

import (
	"context"
	"fmt"
	"time"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/apiclient"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/cache"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/validation"
)

// Resource provides cached CRUD access to one API collection.
type Resource[T any] struct {
	caller apiclient.Caller
	path   string
	byID   *cache.Cache[T]
	lists  *cache.Cache[[]T]
}

// NewResource creates a resource rooted at path (e.g. "/posts"). A
// non-positive cacheTTL disables read caching.
func NewResource[T any](caller apiclient.Caller, path string, cacheTTL time.Duration) *Resource[T] {
	return &Resource[T]{
		caller: caller,
		path:   path,
		byID:   cache.New[T](cacheTTL),
		lists:  cache.New[[]T](cacheTTL),
	}
}

// Get fetches a single entity by id, reading through the cache.
func (r *Resource[T]) Get(ctx context.Context, id int) result.Result[T] {
	key := r.itemPath(id)
	if v, ok := r.byID.Get(key); ok {
		return result.Ok(v)
	}

	return apiclient.Get[T](ctx, r.caller, key).
		Tap(func(v T) { r.byID.Set(key, v) })
}

// List fetches the whole collection. Only unfiltered lists are cached;
// query options always go to the API.
func (r *Resource[T]) List(ctx context.Context, opts ...apiclient.RequestOption) result.Result[[]T] {
	if len(opts) == 0 {
		if items, ok := r.lists.Get(r.path); ok {
			return result.Ok(items)
		}
	}

	res := apiclient.GetList[T](ctx, r.caller, r.path, opts...)
	if len(opts) == 0 {
		res = res.Tap(func(items []T) { r.lists.Set(r.path, items) })
	}
	return res
}

// Create validates the entity and posts it to the collection. The
// request never leaves the process when validation fails.
func (r *Resource[T]) Create(ctx context.Context, entity T) result.Result[T] {
	if err := validation.Validate(entity); err != nil {
		return result.Fail[T](result.Validation(err.Error()).WithCause(err))
	}

	return apiclient.Post[T](ctx, r.caller, r.path, entity).
		Tap(func(T) { r.lists.Flush() })
}

// Update validates the entity and replaces the stored one. Cached
// copies are invalidated, not patched.
func (r *Resource[T]) Update(ctx context.Context, id int, entity T) result.Result[T] {
	if err := validation.Validate(entity); err != nil {
		return result.Fail[T](result.Validation(err.Error()).WithCause(err))
	}

	return apiclient.Put[T](ctx, r.caller, r.itemPath(id), entity).
		Tap(func(T) {
			r.byID.Delete(r.itemPath(id))
			r.lists.Flush()
		})
}

// Delete removes the entity by id and invalidates cached copies.
func (r *Resource[T]) Delete(ctx context.Context, id int) result.Result[result.Unit] {
	return apiclient.Delete(ctx, r.caller, r.itemPath(id)).
		Tap(func(result.Unit) {
			r.byID.Delete(r.itemPath(id))
			r.lists.Flush()
		})
}

// CacheStats returns hit and miss counters for the by-id cache.
func (r *Resource[T]) CacheStats() cache.Stats {
	return r.byID.Stats()
}

func (r *Resource[T]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
