package punch

import "errors"

var (
	ErrStoreUnavailable = errors.New("attendance store unavailable")
)
