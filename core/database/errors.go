package database

import "errors"

// ErrClosed is returned by Handle.DB after the handle has been closed.
var ErrClosed = errors.New("database handle is closed")
