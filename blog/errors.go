package blog

import "errors"

var (
	// ErrDuplicateTitle indicates an Add with a title that already exists.
	ErrDuplicateTitle = errors.New("a post with this title already exists")
	// ErrPostNotFound indicates an Update or Delete against an absent title.
	ErrPostNotFound = errors.New("post not found")
	// ErrTitleExists indicates a rename whose new title collides with
	// another post.
	ErrTitleExists = errors.New("the new title already exists")
	// ErrInvalidImport indicates the import payload is not a valid post mapping.
	ErrInvalidImport = errors.New("invalid import data")
	// ErrSaveFailed indicates a best-effort persistence failure; the change
	// was not saved.
	ErrSaveFailed = errors.New("saving posts failed")
)
