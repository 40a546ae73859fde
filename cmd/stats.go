package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics and exam readiness",
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

		ctx := cmd.Context()
		user := resolveUser(cmd)

		accuracy, total, err := st.AttemptRepo().OverallAccuracy(ctx, user)
		if err != nil {
			return err
		}
		passed, completed, err := st.ExamRepo().PassCounts(ctx, user)
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render("study statistics"))
		fmt.Printf("  questions answered  %d\n", total)
		if total > 0 {
			fmt.Printf("  overall accuracy    %.0f%%\n", accuracy*100)
		}
		fmt.Printf("  exams taken         %d\n", completed)
		fmt.Printf("  exams passed        %d\n", passed)

		fmt.Println()
		fmt.Println(styleTitle.Render("readiness"))
		for _, et := range question.AllExamTypes() {
			snap, err := st.ReadinessRepo().Latest(ctx, user, string(et))
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Printf("  %-11s %s\n", et.DisplayName(), styleHint.Render("no data yet"))
				continue
			}
			fmt.Printf("  %-11s score %.0f%% · pass probability %.0f%% · coverage %.0f%%\n",
				et.DisplayName(), snap.ReadinessScore*100, snap.PassProbability*100, snap.Coverage*100)
		}
		return nil
	},
}
