package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record is not in the expected state")
)
