package repository

import "errors"

var ErrFailedToRead = errors.New("failed to read content cache")
