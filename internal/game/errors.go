package game

import "errors"

// Error kinds. Every one of them ends the session it occurs in.
var (
	ErrInvalidTarget      = errors.New("invalid target")
	ErrGuessNotInWordList = errors.New("guess not in word list")
	ErrDuplicateGuess     = errors.New("duplicate guess")
	ErrInconsistentGuess  = errors.New("inconsistent guess")
	ErrGuesserExhausted   = errors.New("guesser exhausted")
	ErrSessionOver        = errors.New("session over")
)
