package prompt

import "errors"

// ErrNoPriorAnswer means a translation was asked for with nothing to translate.
var ErrNoPriorAnswer = errors.New("no prior assistant answer")
