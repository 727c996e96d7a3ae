package domain

import "errors"

var (
	ErrNoActiveSession           = errors.New("no active session")
	ErrUnknownScene              = errors.New("unknown scene")
	ErrEmptyCatalog              = errors.New("session catalog is empty")
	ErrUnsupportedHistoryBackend = errors.New("unsupported history backend")
)
