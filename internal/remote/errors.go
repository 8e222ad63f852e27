package remote

import "errors"

// ErrFetch means the remote booking could not be obtained
var ErrFetch = errors.New("remote: booking fetch failed")
