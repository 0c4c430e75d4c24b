package repository

import "errors"

var ErrFailedToWalk = errors.New("failed to walk exam store")
