// Package validation provides struct tag validation for config and
// request payloads, backed by the validator library.
//
//	type NewPost struct {
//	    UserID int    `json:"userId" validate:"required,min=1"`
//	    Title  string `json:"title" validate:"required,max=200"`
//	}
//	err := validation.Validate(post)
package validation
