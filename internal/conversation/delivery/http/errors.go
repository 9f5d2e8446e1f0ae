package http

import "errors"

var (
	errSessionIDTooLong = errors.New("session_id is too long")
	errMissingSessionID = errors.New("session id is required")
)
