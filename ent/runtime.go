// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jmarlow/hamprep/ent/attempt"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
	"github.com/jmarlow/hamprep/ent/dailyactivity"
	"github.com/jmarlow/hamprep/ent/examattempt"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
	"github.com/jmarlow/hamprep/ent/schema"
	"github.com/jmarlow/hamprep/ent/telemetryevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptMixin := schema.Attempt{}.Mixin()
	attemptMixinFields0 := attemptMixin[0].Fields()
	_ = attemptMixinFields0
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescTimestamp is the schema descriptor for timestamp field.
	attemptDescTimestamp := attemptMixinFields0[1].Descriptor()
	// attempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	attempt.DefaultTimestamp = attemptDescTimestamp.Default.(func() time.Time)
	// attemptDescAttemptID is the schema descriptor for attempt_id field.
	attemptDescAttemptID := attemptFields[0].Descriptor()
	// attempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attempt.AttemptIDValidator = attemptDescAttemptID.Validators[0].(func(string) error)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescQuestionID is the schema descriptor for question_id field.
	attemptDescQuestionID := attemptFields[2].Descriptor()
	// attempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attempt.QuestionIDValidator = attemptDescQuestionID.Validators[0].(func(string) error)
	// attemptDescDisplayCode is the schema descriptor for display_code field.
	attemptDescDisplayCode := attemptFields[3].Descriptor()
	// attempt.DisplayCodeValidator is a validator for the "display_code" field. It is called by the builders before save.
	attempt.DisplayCodeValidator = attemptDescDisplayCode.Validators[0].(func(string) error)
	// attemptDescSelectedIndex is the schema descriptor for selected_index field.
	attemptDescSelectedIndex := attemptFields[4].Descriptor()
	// attempt.SelectedIndexValidator is a validator for the "selected_index" field. It is called by the builders before save.
	attempt.SelectedIndexValidator = func() func(int) error {
		validators := attemptDescSelectedIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(selected_index int) error {
			for _, fn := range fns {
				if err := fn(selected_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescSessionKind is the schema descriptor for session_kind field.
	attemptDescSessionKind := attemptFields[6].Descriptor()
	// attempt.SessionKindValidator is a validator for the "session_kind" field. It is called by the builders before save.
	attempt.SessionKindValidator = attemptDescSessionKind.Validators[0].(func(string) error)
	badgeunlockFields := schema.BadgeUnlock{}.Fields()
	_ = badgeunlockFields
	// badgeunlockDescUserID is the schema descriptor for user_id field.
	badgeunlockDescUserID := badgeunlockFields[0].Descriptor()
	// badgeunlock.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	badgeunlock.UserIDValidator = badgeunlockDescUserID.Validators[0].(func(string) error)
	// badgeunlockDescBadgeID is the schema descriptor for badge_id field.
	badgeunlockDescBadgeID := badgeunlockFields[1].Descriptor()
	// badgeunlock.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeunlock.BadgeIDValidator = badgeunlockDescBadgeID.Validators[0].(func(string) error)
	// badgeunlockDescUnlockedAt is the schema descriptor for unlocked_at field.
	badgeunlockDescUnlockedAt := badgeunlockFields[2].Descriptor()
	// badgeunlock.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	badgeunlock.DefaultUnlockedAt = badgeunlockDescUnlockedAt.Default.(func() time.Time)
	// badgeunlockDescSeen is the schema descriptor for seen field.
	badgeunlockDescSeen := badgeunlockFields[3].Descriptor()
	// badgeunlock.DefaultSeen holds the default value on creation for the seen field.
	badgeunlock.DefaultSeen = badgeunlockDescSeen.Default.(bool)
	dailyactivityFields := schema.DailyActivity{}.Fields()
	_ = dailyactivityFields
	// dailyactivityDescUserID is the schema descriptor for user_id field.
	dailyactivityDescUserID := dailyactivityFields[0].Descriptor()
	// dailyactivity.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	dailyactivity.UserIDValidator = dailyactivityDescUserID.Validators[0].(func(string) error)
	// dailyactivityDescActivityDay is the schema descriptor for activity_day field.
	dailyactivityDescActivityDay := dailyactivityFields[1].Descriptor()
	// dailyactivity.ActivityDayValidator is a validator for the "activity_day" field. It is called by the builders before save.
	dailyactivity.ActivityDayValidator = dailyactivityDescActivityDay.Validators[0].(func(string) error)
	// dailyactivityDescQuestionsAnswered is the schema descriptor for questions_answered field.
	dailyactivityDescQuestionsAnswered := dailyactivityFields[2].Descriptor()
	// dailyactivity.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	dailyactivity.DefaultQuestionsAnswered = dailyactivityDescQuestionsAnswered.Default.(int)
	// dailyactivity.QuestionsAnsweredValidator is a validator for the "questions_answered" field. It is called by the builders before save.
	dailyactivity.QuestionsAnsweredValidator = dailyactivityDescQuestionsAnswered.Validators[0].(func(int) error)
	// dailyactivityDescQuestionsCorrect is the schema descriptor for questions_correct field.
	dailyactivityDescQuestionsCorrect := dailyactivityFields[3].Descriptor()
	// dailyactivity.DefaultQuestionsCorrect holds the default value on creation for the questions_correct field.
	dailyactivity.DefaultQuestionsCorrect = dailyactivityDescQuestionsCorrect.Default.(int)
	// dailyactivity.QuestionsCorrectValidator is a validator for the "questions_correct" field. It is called by the builders before save.
	dailyactivity.QuestionsCorrectValidator = dailyactivityDescQuestionsCorrect.Validators[0].(func(int) error)
	// dailyactivityDescExamsCompleted is the schema descriptor for exams_completed field.
	dailyactivityDescExamsCompleted := dailyactivityFields[4].Descriptor()
	// dailyactivity.DefaultExamsCompleted holds the default value on creation for the exams_completed field.
	dailyactivity.DefaultExamsCompleted = dailyactivityDescExamsCompleted.Default.(int)
	// dailyactivity.ExamsCompletedValidator is a validator for the "exams_completed" field. It is called by the builders before save.
	dailyactivity.ExamsCompletedValidator = dailyactivityDescExamsCompleted.Validators[0].(func(int) error)
	// dailyactivityDescExamsPassed is the schema descriptor for exams_passed field.
	dailyactivityDescExamsPassed := dailyactivityFields[5].Descriptor()
	// dailyactivity.DefaultExamsPassed holds the default value on creation for the exams_passed field.
	dailyactivity.DefaultExamsPassed = dailyactivityDescExamsPassed.Default.(int)
	// dailyactivity.ExamsPassedValidator is a validator for the "exams_passed" field. It is called by the builders before save.
	dailyactivity.ExamsPassedValidator = dailyactivityDescExamsPassed.Validators[0].(func(int) error)
	examattemptFields := schema.ExamAttempt{}.Fields()
	_ = examattemptFields
	// examattemptDescExamAttemptID is the schema descriptor for exam_attempt_id field.
	examattemptDescExamAttemptID := examattemptFields[0].Descriptor()
	// examattempt.ExamAttemptIDValidator is a validator for the "exam_attempt_id" field. It is called by the builders before save.
	examattempt.ExamAttemptIDValidator = examattemptDescExamAttemptID.Validators[0].(func(string) error)
	// examattemptDescUserID is the schema descriptor for user_id field.
	examattemptDescUserID := examattemptFields[1].Descriptor()
	// examattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examattempt.UserIDValidator = examattemptDescUserID.Validators[0].(func(string) error)
	// examattemptDescExamType is the schema descriptor for exam_type field.
	examattemptDescExamType := examattemptFields[2].Descriptor()
	// examattempt.ExamTypeValidator is a validator for the "exam_type" field. It is called by the builders before save.
	examattempt.ExamTypeValidator = examattemptDescExamType.Validators[0].(func(string) error)
	// examattemptDescRawScore is the schema descriptor for raw_score field.
	examattemptDescRawScore := examattemptFields[3].Descriptor()
	// examattempt.RawScoreValidator is a validator for the "raw_score" field. It is called by the builders before save.
	examattempt.RawScoreValidator = examattemptDescRawScore.Validators[0].(func(int) error)
	// examattemptDescTotalQuestions is the schema descriptor for total_questions field.
	examattemptDescTotalQuestions := examattemptFields[4].Descriptor()
	// examattempt.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	examattempt.TotalQuestionsValidator = examattemptDescTotalQuestions.Validators[0].(func(int) error)
	// examattemptDescPercentage is the schema descriptor for percentage field.
	examattemptDescPercentage := examattemptFields[5].Descriptor()
	// examattempt.PercentageValidator is a validator for the "percentage" field. It is called by the builders before save.
	examattempt.PercentageValidator = func() func(int) error {
		validators := examattemptDescPercentage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(percentage int) error {
			for _, fn := range fns {
				if err := fn(percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// examattemptDescCreatedAt is the schema descriptor for created_at field.
	examattemptDescCreatedAt := examattemptFields[7].Descriptor()
	// examattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	examattempt.DefaultCreatedAt = examattemptDescCreatedAt.Default.(func() time.Time)
	readinesssnapshotFields := schema.ReadinessSnapshot{}.Fields()
	_ = readinesssnapshotFields
	// readinesssnapshotDescUserID is the schema descriptor for user_id field.
	readinesssnapshotDescUserID := readinesssnapshotFields[0].Descriptor()
	// readinesssnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	readinesssnapshot.UserIDValidator = readinesssnapshotDescUserID.Validators[0].(func(string) error)
	// readinesssnapshotDescExamType is the schema descriptor for exam_type field.
	readinesssnapshotDescExamType := readinesssnapshotFields[1].Descriptor()
	// readinesssnapshot.ExamTypeValidator is a validator for the "exam_type" field. It is called by the builders before save.
	readinesssnapshot.ExamTypeValidator = readinesssnapshotDescExamType.Validators[0].(func(string) error)
	// readinesssnapshotDescSnapshotDay is the schema descriptor for snapshot_day field.
	readinesssnapshotDescSnapshotDay := readinesssnapshotFields[2].Descriptor()
	// readinesssnapshot.SnapshotDayValidator is a validator for the "snapshot_day" field. It is called by the builders before save.
	readinesssnapshot.SnapshotDayValidator = readinesssnapshotDescSnapshotDay.Validators[0].(func(string) error)
	// readinesssnapshotDescReadinessScore is the schema descriptor for readiness_score field.
	readinesssnapshotDescReadinessScore := readinesssnapshotFields[3].Descriptor()
	// readinesssnapshot.ReadinessScoreValidator is a validator for the "readiness_score" field. It is called by the builders before save.
	readinesssnapshot.ReadinessScoreValidator = func() func(float64) error {
		validators := readinesssnapshotDescReadinessScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(readiness_score float64) error {
			for _, fn := range fns {
				if err := fn(readiness_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesssnapshotDescPassProbability is the schema descriptor for pass_probability field.
	readinesssnapshotDescPassProbability := readinesssnapshotFields[4].Descriptor()
	// readinesssnapshot.PassProbabilityValidator is a validator for the "pass_probability" field. It is called by the builders before save.
	readinesssnapshot.PassProbabilityValidator = func() func(float64) error {
		validators := readinesssnapshotDescPassProbability.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(pass_probability float64) error {
			for _, fn := range fns {
				if err := fn(pass_probability); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesssnapshotDescRecentAccuracy is the schema descriptor for recent_accuracy field.
	readinesssnapshotDescRecentAccuracy := readinesssnapshotFields[5].Descriptor()
	// readinesssnapshot.RecentAccuracyValidator is a validator for the "recent_accuracy" field. It is called by the builders before save.
	readinesssnapshot.RecentAccuracyValidator = func() func(float64) error {
		validators := readinesssnapshotDescRecentAccuracy.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(recent_accuracy float64) error {
			for _, fn := range fns {
				if err := fn(recent_accuracy); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesssnapshotDescOverallAccuracy is the schema descriptor for overall_accuracy field.
	readinesssnapshotDescOverallAccuracy := readinesssnapshotFields[6].Descriptor()
	// readinesssnapshot.OverallAccuracyValidator is a validator for the "overall_accuracy" field. It is called by the builders before save.
	readinesssnapshot.OverallAccuracyValidator = func() func(float64) error {
		validators := readinesssnapshotDescOverallAccuracy.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(overall_accuracy float64) error {
			for _, fn := range fns {
				if err := fn(overall_accuracy); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesssnapshotDescCoverage is the schema descriptor for coverage field.
	readinesssnapshotDescCoverage := readinesssnapshotFields[7].Descriptor()
	// readinesssnapshot.CoverageValidator is a validator for the "coverage" field. It is called by the builders before save.
	readinesssnapshot.CoverageValidator = func() func(float64) error {
		validators := readinesssnapshotDescCoverage.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(coverage float64) error {
			for _, fn := range fns {
				if err := fn(coverage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesssnapshotDescMastery is the schema descriptor for mastery field.
	readinesssnapshotDescMastery := readinesssnapshotFields[8].Descriptor()
	// readinesssnapshot.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	readinesssnapshot.MasteryValidator = func() func(float64) error {
		validators := readinesssnapshotDescMastery.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery float64) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	telemetryeventMixin := schema.TelemetryEvent{}.Mixin()
	telemetryeventMixinFields0 := telemetryeventMixin[0].Fields()
	_ = telemetryeventMixinFields0
	telemetryeventFields := schema.TelemetryEvent{}.Fields()
	_ = telemetryeventFields
	// telemetryeventDescTimestamp is the schema descriptor for timestamp field.
	telemetryeventDescTimestamp := telemetryeventMixinFields0[1].Descriptor()
	// telemetryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	telemetryevent.DefaultTimestamp = telemetryeventDescTimestamp.Default.(func() time.Time)
	// telemetryeventDescName is the schema descriptor for name field.
	telemetryeventDescName := telemetryeventFields[0].Descriptor()
	// telemetryevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	telemetryevent.NameValidator = telemetryeventDescName.Validators[0].(func(string) error)
}
