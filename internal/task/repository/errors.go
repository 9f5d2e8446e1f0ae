package repository

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrEmptyUpdate  = errors.New("update has no fields")
)
