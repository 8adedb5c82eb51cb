package bot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordlebot/internal/game"
	"github.com/robalobadob/wordlebot/internal/words"
)

// Prompt is a guesser driven by a person typing one word per line.
// It keeps no knowledge of its own; the engine rejects inconsistent input.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompt reads guesses from in and writes prompts and feedback to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

// ProposeGuess returns the next non-blank line, upper-cased.
func (p *Prompt) ProposeGuess() (string, error) {
	for {
		fmt.Fprint(p.out, "guess> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("%w: %v", game.ErrGuesserExhausted, err)
			}
			return "", fmt.Errorf("%w: end of input", game.ErrGuesserExhausted)
		}
		if line := strings.TrimSpace(p.in.Text()); line != "" {
			return words.Normalize(line), nil
		}
	}
}

// RecordFeedback prints the pattern for the last guess.
func (p *Prompt) RecordFeedback(guess string, res game.GuessResult) {
	fmt.Fprintf(p.out, "%s  %s\n", guess, res.Pattern())
}
