// Command wordlebot plays Wordle sessions between the guess engine and a
// guesser (the bot by default, or a person on stdin).
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/config"
	"github.com/robalobadob/wordlebot/internal/words"
)

var (
	cfg       config.Config
	wordsFile string
)

var rootCmd = &cobra.Command{
	Use:           "wordlebot",
	Short:         "Wordle guess engine and solver bot",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if wordsFile != "" {
			cfg.WordsFile = wordsFile
		}
		log.Logger = cfg.Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wordsFile, "words", "", "word list file (overrides WORDS_FILE)")
	rootCmd.AddCommand(playCmd, benchCmd, wordsCmd)
}

// loadWords loads the configured word list.
func loadWords() (*words.List, error) {
	l, err := words.FromPath(cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", l.Len()).Int("skipped", l.Skipped()).Str("file", cfg.WordsFile).Msg("word list loaded")
	return l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("wordlebot failed")
		os.Exit(1)
	}
}
