package holiday

import "errors"

var ErrFailedToFetch = errors.New("failed to fetch holidays")
