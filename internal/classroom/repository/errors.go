package repository

import "errors"

var (
	ErrFailedToBuild = errors.New("failed to build query")
	ErrFailedToList  = errors.New("failed to list records")
)
