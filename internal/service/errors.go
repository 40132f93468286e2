package service

import "errors"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidWeight   = errors.New("section weight must not be negative")
	ErrSessionNotFound = errors.New("survey session not found or expired")
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrUnknownExport   = errors.New("unknown export kind")
)
