// internal/game/engine.go
//
// Guess engine for a single bot-driven Wordle session.
// Responsibilities:
//   - Fix the target word at construction (explicit or random from the list).
//   - Validate each proposed guess: list membership, no repeats, and
//     consistency with the absent letters and known positions learned so far.
//   - Score guesses position by position and feed the result back to the guesser.
//   - Track state transitions: awaiting_guess → evaluating → feedback_recorded
//     → awaiting_guess | solved | exhausted, with aborted on any validation error.
//
// Notes:
//   - The engine keeps its own copy of what the guesser has been told; it never
//     trusts the guesser to report its knowledge.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordlebot/internal/words"
)

// Engine owns the target word and the history of one session.
type Engine struct {
	id     string
	list   *words.List
	target string
	log    zerolog.Logger

	known  [words.WordLength]byte // 0 = unknown
	absent [26]bool
	seen   map[string]struct{}
	rounds []Round

	state State
	err   error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New starts a session over list.
// If target is empty a word is chosen uniformly at random from list;
// otherwise the normalized target must be a member of list.
func New(list *words.List, target string, opts ...Option) (*Engine, error) {
	e := &Engine{
		id:    randomID(),
		list:  list,
		log:   zerolog.Nop(),
		seen:  make(map[string]struct{}),
		state: StateAwaitingGuess,
	}
	for _, o := range opts {
		o(e)
	}
	e.log = e.log.With().Str("session", e.id).Logger()

	if target == "" {
		e.target = list.Random()
	} else {
		e.target = words.Normalize(target)
		if !list.Contains(e.target) {
			return nil, fmt.Errorf("%w: %s is not in the word list", ErrInvalidTarget, e.target)
		}
	}
	return e, nil
}

// Run plays a full session and returns its report.
// A target outside the list yields an aborted report with zero rounds.
func Run(list *words.List, target string, g Guesser, opts ...Option) (*Report, error) {
	e, err := New(list, target, opts...)
	if err != nil {
		return &Report{Target: words.Normalize(target), Outcome: OutcomeAborted, Err: err}, err
	}
	return e.Play(g)
}

// ID returns the session identifier.
func (e *Engine) ID() string { return e.id }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Play runs rounds until the guesser solves the word, the budget of
// MaxAttempts is spent, or a round aborts. The returned error is non-nil
// only for aborted sessions.
func (e *Engine) Play(g Guesser) (*Report, error) {
	if e.state.Terminal() {
		return e.Report(), ErrSessionOver
	}
	for len(e.rounds) < MaxAttempts {
		solved, err := e.Step(g)
		if err != nil {
			return e.Report(), err
		}
		if solved {
			return e.Report(), nil
		}
	}
	e.state = StateExhausted
	e.log.Info().Str("target", e.target).Int("rounds", len(e.rounds)).Msg("attempts exhausted")
	return e.Report(), nil
}

// Step plays exactly one round: ask, validate, evaluate, deliver feedback.
func (e *Engine) Step(g Guesser) (bool, error) {
	if e.state.Terminal() {
		return false, ErrSessionOver
	}
	guess, err := g.ProposeGuess()
	if err != nil {
		return false, e.abort(err)
	}
	guess = words.Normalize(guess)
	e.state = StateEvaluating

	if err := e.Validate(guess); err != nil {
		return false, e.abort(err)
	}

	res, err := e.Evaluate(guess)
	if err != nil {
		return false, e.abort(err)
	}
	e.seen[guess] = struct{}{}
	e.rounds = append(e.rounds, Round{Guess: guess, Result: res})
	e.log.Debug().
		Int("round", len(e.rounds)).
		Str("guess", guess).
		Str("pattern", res.Pattern()).
		Msg("evaluated guess")

	g.RecordFeedback(guess, res)
	e.state = StateFeedbackRecorded

	switch {
	case res.AllCorrect:
		e.state = StateSolved
		e.log.Info().Str("target", e.target).Int("rounds", len(e.rounds)).Msg("solved")
		return true, nil
	case len(e.rounds) >= MaxAttempts:
		e.state = StateExhausted
	default:
		e.state = StateAwaitingGuess
	}
	return false, nil
}

// Validate checks a normalized guess against the list, the session history
// and the constraints disclosed to the guesser so far.
func (e *Engine) Validate(guess string) error {
	if !e.list.Contains(guess) {
		return fmt.Errorf("%w: %q", ErrGuessNotInWordList, guess)
	}
	if _, dup := e.seen[guess]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateGuess, guess)
	}
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if e.absent[c-'A'] {
			return fmt.Errorf("%w: %s uses %c which is not in the word", ErrInconsistentGuess, guess, c)
		}
		if k := e.known[i]; k != 0 && c != k {
			return fmt.Errorf("%w: %s drops %c at position %d", ErrInconsistentGuess, guess, k, i)
		}
	}
	return nil
}

// Evaluate scores guess against the target and records the newly learned
// known positions and absent letters. guess is normalized first; anything
// that is not a WordLength word is rejected with ErrGuessNotInWordList.
//
// Unlike the two-pass scoring of the web game, InWord is a plain membership
// test per letter, so repeated letters are all marked in the word.
func (e *Engine) Evaluate(guess string) (GuessResult, error) {
	guess = words.Normalize(guess)
	if !words.Valid(guess) {
		return GuessResult{}, fmt.Errorf("%w: %q is not a %d-letter word", ErrGuessNotInWordList, guess, words.WordLength)
	}
	res := GuessResult{Letters: make([]LetterFeedback, len(guess)), AllCorrect: true}
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		lf := LetterFeedback{Letter: c}
		if c == e.target[i] {
			lf.InCorrectPlace = true
			e.known[i] = c
		} else {
			res.AllCorrect = false
		}
		if strings.IndexByte(e.target, c) >= 0 {
			lf.InWord = true
		} else {
			e.absent[c-'A'] = true
		}
		res.Letters[i] = lf
	}
	return res, nil
}

// Report snapshots the session history.
func (e *Engine) Report() *Report {
	r := &Report{
		ID:     e.id,
		Target: e.target,
		Rounds: append([]Round(nil), e.rounds...),
		Err:    e.err,
	}
	switch e.state {
	case StateSolved:
		r.Outcome = OutcomeSolved
	case StateExhausted:
		r.Outcome = OutcomeExhausted
	case StateAborted:
		r.Outcome = OutcomeAborted
	}
	return r
}

// abort ends the session with err.
func (e *Engine) abort(err error) error {
	e.state = StateAborted
	e.err = err
	ev := e.log.Warn()
	if errors.Is(err, ErrGuesserExhausted) {
		ev = e.log.Info()
	}
	ev.Err(err).Int("rounds", len(e.rounds)).Msg("session aborted")
	return err
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
