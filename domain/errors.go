package domain

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomCodeTaken    = errors.New("room code already in use")

	ErrNotHost          = errors.New("only the host can perform this action")
	ErrGameNotInLobby   = errors.New("game is not in lobby state")
	ErrGameCompleted    = errors.New("game is already completed")
	ErrNoOpenQuestion   = errors.New("no question is currently open")
	ErrStaleSubmission  = errors.New("submission does not match the open question")
	ErrAlreadyAnswered  = errors.New("player already answered this question")
	ErrDuplicateAnswer  = errors.New("answer already recorded for this question")
	ErrNotRegistered    = errors.New("connection is not registered to a room")
	ErrInvalidInput     = errors.New("invalid input")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrUnauthorized     = errors.New("unauthorized")
)
