package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/daily"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := loadWords()
		if err != nil {
			return err
		}
		now := time.Now()
		fmt.Fprintf(cmd.OutOrStdout(), "words   %d\nskipped %d\ndaily   %s (index %d)\n",
			list.Len(), list.Skipped(), daily.DateKey(now), daily.NewPicker(cfg.DailySalt).Index(now, list.Len()))
		return nil
	},
}
