package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlebot/internal/game"
	"github.com/robalobadob/wordlebot/internal/store"
	"github.com/robalobadob/wordlebot/internal/words"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "disabled")
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), playCmd.Flags(), benchCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlay_HumanSolves(t *testing.T) {
	out, err := execute(t, "slate\ncrane\n", "play", "--human", "--target", "crane")
	require.NoError(t, err)
	assert.Contains(t, out, "SLATE  ??A?E")
	assert.Contains(t, out, "solved CRANE in 2/6")
}

func writeWords(t *testing.T, ws ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(ws, "\n")+"\n"), 0o644))
	return path
}

func TestPlay_BotSolvesOnlyCandidate(t *testing.T) {
	path := writeWords(t, "crane")
	out, err := execute(t, "", "play", "--words", path, "--target", "CRANE", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, "1  CRANE  CRANE\nsolved CRANE in 1/6\n", out)
}

func TestPlay_BotExhaustsAnagrams(t *testing.T) {
	// None of these anagrams has a letter in its CRANE position, so every
	// round reads ***** and nothing is learned.
	path := writeWords(t, "crane", "racen", "acern", "necra", "enrca", "recan", "aecrn")
	in := "racen\nacern\nnecra\nenrca\nrecan\naecrn\n"
	out, err := execute(t, in, "play", "--words", path, "--target", "CRANE", "--human")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "*****"))
	assert.True(t, strings.HasSuffix(out, "not solved, the word was CRANE\n"), out)
}

func TestPlay_SameSeedSameSession(t *testing.T) {
	first, err := execute(t, "", "play", "--target", "CRANE", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, "", "play", "--target", "CRANE", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	last := lines[len(lines)-1]
	rounds := len(lines) - 1
	require.GreaterOrEqual(t, rounds, 1)
	require.LessOrEqual(t, rounds, 6)
	if strings.HasPrefix(last, "solved") {
		assert.Equal(t, fmt.Sprintf("solved CRANE in %d/6", rounds), last)
		assert.Contains(t, lines[rounds-1], "CRANE  CRANE")
	} else {
		assert.Equal(t, "not solved, the word was CRANE", last)
		assert.Equal(t, 6, rounds)
	}
}

func TestPlay_TargetAndDailyExclusive(t *testing.T) {
	_, err := execute(t, "", "play", "--target", "CRANE", "--daily")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily")
}

func TestPlay_InvalidTarget(t *testing.T) {
	_, err := execute(t, "", "play", "--target", "HELLO")
	assert.ErrorIs(t, err, game.ErrInvalidTarget)
}

func TestBench_SavesEveryReport(t *testing.T) {
	list, err := words.Default()
	require.NoError(t, err)
	st := store.NewMemoryStore()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	require.NoError(t, bench(cmd, list, st, 25, 3))
	s, err := store.Summarize(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, 25, s.Sessions)
	assert.Zero(t, s.Aborted)
	assert.Equal(t, 25, s.Solved+s.Exhausted)
}
