package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("invalid input")
	ErrMediaUpload  = errors.New("media upload failed")
)
