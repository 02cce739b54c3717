package rating

import "errors"

var (
	ErrDuplicatePlayer = errors.New("player already exists")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrEmptyName       = errors.New("player name must not be empty")
	ErrInvalidResult   = errors.New("invalid match result")
	ErrSelfMatch       = errors.New("a player cannot play against themselves")
	ErrInvalidKFactor  = errors.New("k-factor must be a positive finite number")
	ErrInvalidRecord   = errors.New("invalid player record")
)
