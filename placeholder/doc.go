// Package placeholder models the JSONPlaceholder REST resources and
// provides a typed Service over them.
//
// Each resource (posts, comments, albums, photos, todos, users) gets a
// repository with cached reads and validated writes. Repositories share
// a generic Resource core and add the nested and filtered routes the
// API exposes, such as /posts/{id}/comments and ?userId= filters.
package placeholder
