package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQuery adds a query parameter to the request.
func WithQuery(key, value string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// Get performs a GET request and decodes the JSON response into T.
func Get[T any](ctx context.Context, c Caller, path string, opts ...RequestOption) result.Result[T] {
	return doTyped[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// GetList performs a GET request and decodes the JSON response into a
// slice of T. A null or empty body yields an empty, non-nil slice.
func GetList[T any](ctx context.Context, c Caller, path string, opts ...RequestOption) result.Result[[]T] {
	r := doTyped[[]T](ctx, c, http.MethodGet, path, nil, opts...)
	return result.Map(r, func(items []T) []T {
		if items == nil {
			return []T{}
		}
		return items
	})
}

// Post performs a POST request with a JSON body and decodes the
// response into T.
func Post[T any](ctx context.Context, c Caller, path string, body any, opts ...RequestOption) result.Result[T] {
	return doTyped[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body and decodes the response
// into T.
func Put[T any](ctx context.Context, c Caller, path string, body any, opts ...RequestOption) result.Result[T] {
	return doTyped[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Delete performs a DELETE request, discarding any response body.
func Delete(ctx context.Context, c Caller, path string, opts ...RequestOption) result.Result[result.Unit] {
	return doTyped[result.Unit](ctx, c, http.MethodDelete, path, nil, opts...)
}

// doTyped executes a request through the Caller and decodes the body.
func doTyped[T any](ctx context.Context, c Caller, method, path string, body any, opts ...RequestOption) result.Result[T] {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return result.Bind(c.Call(ctx, req), decode[T])
}

// decode unmarshals a payload body into T. An empty body yields the
// zero value; a JSON null leaves the zero value untouched.
func decode[T any](p Payload) result.Result[T] {
	var data T
	if len(p.Body) == 0 {
		return result.Ok(data)
	}
	if err := json.Unmarshal(p.Body, &data); err != nil {
		f := result.Exception(fmt.Sprintf("decode response: %v", err), err).WithStatus(p.StatusCode)
		return result.Fail[T](f)
	}
	return result.Ok(data)
}
