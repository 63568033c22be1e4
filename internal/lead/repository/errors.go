package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert lead")
	ErrFailedToGet    = errors.New("failed to get lead")
	ErrFailedToList   = errors.New("failed to list leads")
	ErrFailedToUpdate = errors.New("failed to update lead")
	ErrFailedToDelete = errors.New("failed to delete lead")
	ErrNothingToSet   = errors.New("no fields to update")
	ErrDuplicatePhone = errors.New("phone already exists")
)
