package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/bot"
	"github.com/robalobadob/wordlebot/internal/game"
	"github.com/robalobadob/wordlebot/internal/store"
	"github.com/robalobadob/wordlebot/internal/words"
)

var (
	benchN    int
	benchSeed uint64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Play many bot sessions and summarize the outcomes",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchN, "sessions", "n", 100, "number of sessions")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "seed for the first session; session i uses seed+i")
}

func runBench(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}
	st := store.NewMemoryStore()
	if err := bench(cmd, list, st, benchN, benchSeed); err != nil {
		return err
	}
	s, err := store.Summarize(cmd.Context(), st)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sessions  %d\nsolved    %d\nexhausted %d\naborted   %d\n", s.Sessions, s.Solved, s.Exhausted, s.Aborted)
	if s.Solved > 0 {
		fmt.Fprintf(out, "mean      %.2f\n", s.MeanRounds())
		for n := 1; n < len(s.Histogram); n++ {
			fmt.Fprintf(out, "  %d: %d\n", n, s.Histogram[n])
		}
	}
	for _, k := range s.ErrorKinds() {
		fmt.Fprintf(out, "  %s: %d\n", k, s.Errors[k])
	}
	return nil
}

// bench plays n seeded sessions against random targets and saves every report.
func bench(cmd *cobra.Command, list *words.List, st store.Store, n int, seed uint64) error {
	for i := 0; i < n; i++ {
		rep, err := game.Run(list, "", bot.Seeded(list, seed+uint64(i)), game.WithLogger(log.Logger))
		if err != nil {
			log.Debug().Err(err).Str("session", rep.ID).Msg("session aborted")
		}
		if err := st.Save(cmd.Context(), rep); err != nil {
			return err
		}
	}
	return nil
}
