// internal/game/types.go
//
// Core type definitions shared by the engine and guessers.
// Defines:
//   - LetterFeedback / GuessResult: per-position evaluation of a guess.
//   - State / Outcome: session lifecycle and terminal outcome.
//   - Round / Report: the ordered history a finished session exposes.
//   - Guesser: the capability every player (bot or human) implements.

package game

import "strings"

// MaxAttempts is the number of rounds a session may play.
const MaxAttempts = 6

// LetterFeedback is the evaluation of one guessed letter.
// InCorrectPlace and InWord are computed independently.
type LetterFeedback struct {
	Letter         byte `json:"letter"`
	InCorrectPlace bool `json:"inCorrectPlace"`
	InWord         bool `json:"inWord"`
}

// GuessResult holds one LetterFeedback per position.
type GuessResult struct {
	Letters    []LetterFeedback `json:"letters"`
	AllCorrect bool             `json:"allCorrect"`
}

// Pattern renders the result one character per position:
// the letter itself when in the correct place, '*' when elsewhere in the word,
// '?' when absent.
func (r GuessResult) Pattern() string {
	var b strings.Builder
	b.Grow(len(r.Letters))
	for _, l := range r.Letters {
		switch {
		case l.InCorrectPlace:
			b.WriteByte(l.Letter)
		case l.InWord:
			b.WriteByte('*')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// State is the position of a session in its lifecycle.
type State string

const (
	StateAwaitingGuess    State = "awaiting_guess"
	StateEvaluating       State = "evaluating"
	StateFeedbackRecorded State = "feedback_recorded"
	StateSolved           State = "solved"
	StateExhausted        State = "exhausted"
	StateAborted          State = "aborted"
)

// Terminal reports whether no further rounds can be played.
func (s State) Terminal() bool {
	return s == StateSolved || s == StateExhausted || s == StateAborted
}

// Outcome is how a session ended.
type Outcome string

const (
	OutcomeSolved    Outcome = "solved"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeAborted   Outcome = "aborted"
)

// Round pairs a guess with the feedback it received.
type Round struct {
	Guess  string      `json:"guess"`
	Result GuessResult `json:"result"`
}

// Report describes a finished session.
type Report struct {
	ID      string  `json:"id"`
	Target  string  `json:"target"`
	Outcome Outcome `json:"outcome"`
	Rounds  []Round `json:"rounds"`
	Err     error   `json:"-"`
}

// RoundsUsed is the number of evaluated guesses.
func (r *Report) RoundsUsed() int { return len(r.Rounds) }

// Guesser proposes guesses and learns from their feedback.
type Guesser interface {
	// ProposeGuess returns the next word to try, or an error wrapping
	// ErrGuesserExhausted when no acceptable word remains.
	ProposeGuess() (string, error)

	// RecordFeedback delivers the evaluation of the last proposed guess.
	RecordFeedback(guess string, result GuessResult)
}
