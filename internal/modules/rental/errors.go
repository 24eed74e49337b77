package rental

import "errors"

var ErrValidation = errors.New("validation error")
