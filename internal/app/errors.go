package app

import "errors"

// Business errors, kept distinct from infrastructure failures so the
// HTTP adapter can map them to stable status codes. Validation and
// invalid-vote errors originate in the domain package and pass through
// unchanged.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrUserNotFound = errors.New("user not in room")
	ErrRoomFull     = errors.New("room is full")
)
