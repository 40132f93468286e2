package util

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidToken     = errors.New("invalid token")
	ErrEmptyRoster      = errors.New("no personnel names given")
	ErrEmptyWeights     = errors.New("no weights given")
)
