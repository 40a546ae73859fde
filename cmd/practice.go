package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmarlow/hamprep/internal/engine"
	"github.com/jmarlow/hamprep/internal/picker"
	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/recorder"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice random questions from the pool",
	Long: `Practice draws random questions from the selected exam pool with
no repeats until the whole pool has been seen. Answer with a-d,
step through the session with p (previous) and n (next), quit
with q.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		examType, err := parseExamFlag(cmd)
		if err != nil {
			return err
		}
		eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer eng.Close()

		return runPractice(cmd, eng, examType)
	},
}

func init() {
	practiceCmd.Flags().String("exam", "technician", "Exam pool: technician, general, or extra")
	practiceCmd.Flags().String("subelement", "", "Limit practice to one subelement (e.g. T1)")
}

func runPractice(cmd *cobra.Command, eng *engine.Engine, examType question.ExamType) error {
	ctx := cmd.Context()

	var cursor *picker.Cursor
	if sub, _ := cmd.Flags().GetString("subelement"); sub != "" {
		cursor = eng.NewSubelementCursor(strings.ToUpper(sub))
	} else {
		cursor = eng.NewCursor(examType)
	}

	entry, ok := cursor.Reset()
	if !ok {
		return fmt.Errorf("no questions available for %s", examType.DisplayName())
	}

	fmt.Printf("%s\n%s\n",
		styleTitle.Render(fmt.Sprintf("%s practice", examType.DisplayName())),
		styleHint.Render("a-d answer · p previous · n next · q quit"))

	in := bufio.NewScanner(os.Stdin)
	answered, correct := 0, 0

	for {
		printQuestion(entry, cursor)

		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		input := strings.ToLower(strings.TrimSpace(in.Text()))

		switch input {
		case "q":
			printPracticeSummary(answered, correct)
			return finishSession(ctx, eng)

		case "p":
			if prev, ok := cursor.GoBack(); ok {
				entry = prev
			}

		case "n", "":
			next, ok := cursor.Advance()
			if !ok {
				fmt.Println(styleHint.Render("pool empty"))
				continue
			}
			entry = next

		case "a", "b", "c", "d":
			if entry.Answered {
				fmt.Println(styleHint.Render("already answered; n for the next question"))
				continue
			}
			sel := int(input[0] - 'a')
			cursor.MarkAnswered(sel)
			if current, ok := cursor.Current(); ok {
				entry = current
			}

			ans := recorder.Answer{Question: entry.Question, SelectedIndex: sel}
			answered++
			if ans.Correct() {
				correct++
				fmt.Println(styleCorrect.Render("correct"))
			} else {
				q := entry.Question
				fmt.Println(styleWrong.Render(fmt.Sprintf("incorrect — answer: %c. %s",
					'a'+q.CorrectIndex, q.Options[q.CorrectIndex])))
				maybeExplain(ctx, eng, q, sel)
			}

			if err := eng.Recorder.RecordAttempt(ctx, ans, recorder.KindStandalonePractice); err != nil {
				fmt.Fprintf(os.Stderr, "warning: attempt not recorded: %v\n", err)
			}

			next, ok := cursor.Advance()
			if !ok {
				printPracticeSummary(answered, correct)
				return finishSession(ctx, eng)
			}
			entry = next

		default:
			fmt.Println(styleHint.Render("answer with a-d, or p/n/q"))
		}
	}

	printPracticeSummary(answered, correct)
	return finishSession(ctx, eng)
}

func printQuestion(entry picker.HistoryEntry, cursor *picker.Cursor) {
	q := entry.Question
	fmt.Printf("\n%s  %s\n", styleCode.Render(q.DisplayCode), q.Prompt)
	for i, opt := range q.Options {
		marker := " "
		if entry.Answered && i == entry.SelectedIndex {
			marker = ">"
		}
		fmt.Printf(" %s %c. %s\n", marker, 'a'+i, opt)
	}
	fmt.Println(styleHint.Render(fmt.Sprintf("question %d of %d", cursor.Pos()+1, cursor.PoolSize())))
}

func printPracticeSummary(answered, correct int) {
	if answered == 0 {
		return
	}
	fmt.Printf("\n%s %d/%d correct\n", styleTitle.Render("session:"), correct, answered)
}

// maybeExplain prints a coaching explanation for a missed question
// when a provider is configured. Failures are silent.
func maybeExplain(ctx context.Context, eng *engine.Engine, q question.Question, selected int) {
	if !eng.Explainer.Available() {
		return
	}
	exp, err := eng.Explainer.Explain(ctx, q, selected)
	if err != nil {
		return
	}
	fmt.Printf("%s %s\n", styleAccent.Render("why:"), exp.Explanation)
	if exp.MemoryHook != "" {
		fmt.Println(styleHint.Render("hint: " + exp.MemoryHook))
	}
}

// finishSession checks for newly unlocked badges and announces them.
func finishSession(ctx context.Context, eng *engine.Engine) error {
	fresh, err := eng.Badges.CheckForNew(ctx, eng.UserID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: badge check failed: %v\n", err)
		return nil
	}
	for _, b := range fresh {
		fmt.Printf("%s %s %s — %s\n",
			styleAccent.Render("badge unlocked!"), b.Tier.Icon(), b.Title, b.Description)
	}
	return nil
}
