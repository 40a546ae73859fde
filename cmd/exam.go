package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/recorder"
)

// examLength is the published question count per exam element.
var examLength = map[question.ExamType]int{
	question.ExamTechnician: 35,
	question.ExamGeneral:    35,
	question.ExamExtra:      50,
}

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take a full simulated exam",
	Long: `Exam runs a full-length simulated exam (35 questions for Technician
and General, 50 for Extra), scores it against the real passing
threshold, and records the result.`,
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

		pool := eng.Bank().Pool(examType)
		count := examLength[examType]
		if len(pool) < count {
			count = len(pool)
		}
		if count == 0 {
			return fmt.Errorf("no questions available for %s", examType.DisplayName())
		}

		questions := sampleQuestions(pool, count)
		fmt.Printf("%s\n%s\n",
			styleTitle.Render(fmt.Sprintf("%s exam — %d questions", examType.DisplayName(), count)),
			styleHint.Render("answer a-d; skipped questions count as wrong"))

		in := bufio.NewScanner(os.Stdin)
		answers := make([]recorder.Answer, 0, count)
		for i, q := range questions {
			fmt.Printf("\n%s %s  %s\n", styleHint.Render(fmt.Sprintf("[%d/%d]", i+1, count)),
				styleCode.Render(q.DisplayCode), q.Prompt)
			for j, opt := range q.Options {
				fmt.Printf("   %c. %s\n", 'a'+j, opt)
			}

			sel := -1
			fmt.Print("> ")
			if in.Scan() {
				input := strings.ToLower(strings.TrimSpace(in.Text()))
				if len(input) == 1 && input[0] >= 'a' && input[0] <= 'd' {
					sel = int(input[0] - 'a')
				}
			}
			answers = append(answers, recorder.Answer{Question: q, SelectedIndex: sel})
		}

		result, err := eng.Recorder.RecordExam(cmd.Context(), examType, answers)
		if err != nil {
			return err
		}

		verdict := styleWrong.Render("FAIL")
		if result.Passed {
			verdict = styleCorrect.Render("PASS")
		}
		fmt.Printf("\n%s  %d/%d (%d%%) — %s\n",
			styleTitle.Render("result:"), result.RawScore, result.TotalQuestions, result.Percentage, verdict)

		return finishSession(cmd.Context(), eng)
	},
}

func init() {
	examCmd.Flags().String("exam", "technician", "Exam element: technician, general, or extra")
}

// sampleQuestions picks count distinct questions uniformly from pool.
func sampleQuestions(pool []question.Question, count int) []question.Question {
	idx := rand.Perm(len(pool))[:count]
	out := make([]question.Question, count)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}
