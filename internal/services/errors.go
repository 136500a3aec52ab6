package services

import "errors"

// Domain failures. The HTTP layer translates these into status codes;
// everything else bubbles up as an internal error.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrAuthorNotFound     = errors.New("author not found")
	ErrDiscussionNotFound = errors.New("discussion not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrParentNotFound     = errors.New("parent comment not found")
	ErrParentMismatch     = errors.New("parent comment belongs to a different discussion")
	ErrUnauthorized       = errors.New("unauthorized")
)
