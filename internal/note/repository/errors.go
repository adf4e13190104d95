package repository

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrCorruptFallback = errors.New("fallback cache holds undecodable data")
)
