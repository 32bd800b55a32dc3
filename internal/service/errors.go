// Package service holds the business operations behind the HTTP handlers.
// Services translate forms into entities, apply defaults and enforce the rules
// that span more than one row.
package service

import "errors"

var (
	// ErrNotFound means the targeted entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means the (user, job) pair is already recorded.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden means the caller may not act on the entity.
	ErrForbidden = errors.New("forbidden")
)
