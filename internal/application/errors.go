package app

import "errors"

var (
	ErrDetectorNotConfigured = errors.New("detector is not configured")
	ErrCodecNotConfigured    = errors.New("image codec is not configured")
	ErrEmptyImage            = errors.New("empty image")
	ErrUndecodableImage      = errors.New("image could not be decoded")
)
