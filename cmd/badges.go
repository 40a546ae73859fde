package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmarlow/hamprep/internal/badges"
	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show unlocked and locked badges",
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

		tracker := streak.NewTracker(st.ActivityRepo(), 0, nil)
		collector := badges.NewCollector(st.AttemptRepo(), st.ExamRepo(), st.ReadinessRepo(), tracker)
		ev := badges.NewEvaluator(st.BadgeRepo(), collector, nil)

		// Pick up anything earned since the last session.
		if _, err := ev.CheckForNew(ctx, user); err != nil {
			return err
		}

		unlocked, err := ev.Unlocked(ctx, user)
		if err != nil {
			return err
		}
		locked, err := ev.Locked(ctx, user)
		if err != nil {
			return err
		}
		points, err := ev.TotalPoints(ctx, user)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", styleTitle.Render("badges"),
			styleAccent.Render(fmt.Sprintf("%d points", points)))

		var unseen []string
		for _, b := range unlocked {
			line := fmt.Sprintf("  %s %-16s %s", b.Tier.Icon(), b.Title, styleHint.Render(b.Description))
			if !b.Seen {
				line += "  " + styleAccent.Render("new!")
				unseen = append(unseen, b.ID)
			}
			fmt.Println(line)
		}
		for _, b := range locked {
			fmt.Printf("  %s %-16s %s\n", styleHint.Render("·"), styleHint.Render(b.Title),
				styleHint.Render(b.Description))
		}

		return ev.MarkSeen(ctx, user, unseen)
	},
}
