package async

import "errors"

var ErrPanic = errors.New("async: computation panicked")
