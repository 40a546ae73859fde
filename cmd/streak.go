package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the daily study streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := streak.NewTracker(st.ActivityRepo(), 0, nil)
		info, err := tracker.Info(cmd.Context(), resolveUser(cmd))
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render("daily streak"))
		current := fmt.Sprintf("  current  %d day(s)", info.CurrentStreak)
		if info.IsAtRisk {
			current += "  " + styleWrong.Render("at risk")
		}
		fmt.Println(current)
		fmt.Printf("  longest  %d day(s)\n", info.LongestStreak)
		fmt.Printf("  today    %d answered", info.QuestionsAnsweredToday)
		if info.QuestionsNeededToday > 0 {
			fmt.Printf(", %s", styleAccent.Render(fmt.Sprintf("%d more to keep the streak", info.QuestionsNeededToday)))
		} else {
			fmt.Printf("  %s", styleCorrect.Render("goal met"))
		}
		fmt.Println()
		if info.LastQualifyingDate != "" {
			fmt.Println(styleHint.Render("last qualifying day: " + info.LastQualifyingDate))
		}
		return nil
	},
}
