package domain

import "errors"

// ErrNotFound is returned by stores for missing documents.
var ErrNotFound = errors.New("not found")
