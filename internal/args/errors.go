package args

import "errors"

var (
	ErrTooManyArgs = errors.New("args: too many args")
)
