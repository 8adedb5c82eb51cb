package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/bot"
	"github.com/robalobadob/wordlebot/internal/daily"
	"github.com/robalobadob/wordlebot/internal/game"
)

var (
	playTarget string
	playDaily  bool
	playSeed   uint64
	playHuman  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session",
	Long: `Play one session against a random, fixed or daily target.

Each round prints the guess and its feedback pattern:
the letter when it is in the right place, * when it is elsewhere
in the word, ? when it is not in the word.`,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playTarget, "target", "", "target word (must be in the word list)")
	f.BoolVar(&playDaily, "daily", false, "use the word of the day as target")
	f.Uint64Var(&playSeed, "seed", 0, "bot random seed (0 = random)")
	f.BoolVar(&playHuman, "human", false, "read guesses from stdin instead of using the bot")
	playCmd.MarkFlagsMutuallyExclusive("target", "daily")
}

func runPlay(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}
	target := playTarget
	if playDaily {
		target = daily.NewPicker(cfg.DailySalt).Target(list, time.Now())
	}

	var g game.Guesser
	switch {
	case playHuman:
		g = bot.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	case playSeed != 0:
		g = bot.Seeded(list, playSeed)
	default:
		g = bot.New(list, nil)
	}

	rep, err := game.Run(list, target, g, game.WithLogger(log.Logger))
	out := cmd.OutOrStdout()
	if !playHuman {
		for i, r := range rep.Rounds {
			fmt.Fprintf(out, "%d  %s  %s\n", i+1, r.Guess, r.Result.Pattern())
		}
	}
	switch rep.Outcome {
	case game.OutcomeSolved:
		fmt.Fprintf(out, "solved %s in %d/%d\n", rep.Target, rep.RoundsUsed(), game.MaxAttempts)
	case game.OutcomeExhausted:
		fmt.Fprintf(out, "not solved, the word was %s\n", rep.Target)
	}
	return err
}
