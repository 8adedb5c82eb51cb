package bot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlebot/internal/game"
)

func TestPrompt_ReadsNormalizedLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("crane\n\n  slate \n"), &out)

	w, err := p.ProposeGuess()
	require.NoError(t, err)
	assert.Equal(t, "CRANE", w)

	w, err = p.ProposeGuess()
	require.NoError(t, err)
	assert.Equal(t, "SLATE", w)

	_, err = p.ProposeGuess()
	assert.ErrorIs(t, err, game.ErrGuesserExhausted)
	assert.Contains(t, out.String(), "guess> ")
}

func TestPrompt_SessionWithEngine(t *testing.T) {
	list := mustList(t, "CRANE", "TRACE", "SLATE")
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("trace\ncrane\n"), &out)

	rep, err := game.Run(list, "CRANE", p)
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeSolved, rep.Outcome)
	assert.Equal(t, 2, rep.RoundsUsed())
	assert.Contains(t, out.String(), "TRACE  *RA*E")
	assert.Contains(t, out.String(), "CRANE  CRANE")
}

func TestPrompt_EngineRejectsUnknownWord(t *testing.T) {
	list := mustList(t, "CRANE", "TRACE")
	p := NewPrompt(strings.NewReader("hello\n"), &bytes.Buffer{})

	rep, err := game.Run(list, "CRANE", p)
	require.ErrorIs(t, err, game.ErrGuessNotInWordList)
	assert.Equal(t, game.OutcomeAborted, rep.Outcome)
}
