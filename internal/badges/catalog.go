package badges

// Stats aggregates everything the unlock rules look at. One snapshot
// is gathered per evaluation so all rules see consistent numbers.
type Stats struct {
	QuestionsAnswered int
	QuestionsCorrect  int
	OverallAccuracy   float64
	ExamsCompleted    int
	ExamsPassed       int
	CurrentStreak     int
	LongestStreak     int
	BestReadiness     float64
}

// Badge is one entry in the static achievement catalog.
type Badge struct {
	ID          string
	Title       string
	Description string
	Tier        Tier
	Points      int
	Rule        func(Stats) bool
}

// Catalog returns the full badge catalog in display order. The slice
// is rebuilt on each call so callers can't mutate shared state.
func Catalog() []Badge {
	return []Badge{
		{
			ID:          "first-contact",
			Title:       "First Contact",
			Description: "Answer your first question",
			Tier:        TierBronze,
			Points:      10,
			Rule:        func(s Stats) bool { return s.QuestionsAnswered >= 1 },
		},
		{
			ID:          "century",
			Title:       "Century",
			Description: "Answer 100 questions",
			Tier:        TierSilver,
			Points:      25,
			Rule:        func(s Stats) bool { return s.QuestionsAnswered >= 100 },
		},
		{
			ID:          "ragchewer",
			Title:       "Ragchewer",
			Description: "Answer 500 questions",
			Tier:        TierGold,
			Points:      50,
			Rule:        func(s Stats) bool { return s.QuestionsAnswered >= 500 },
		},
		{
			ID:          "key-down",
			Title:       "Key Down",
			Description: "Answer 2000 questions",
			Tier:        TierPlatinum,
			Points:      100,
			Rule:        func(s Stats) bool { return s.QuestionsAnswered >= 2000 },
		},
		{
			ID:          "sharp-operator",
			Title:       "Sharp Operator",
			Description: "Hold 90% accuracy over at least 50 answers",
			Tier:        TierSilver,
			Points:      25,
			Rule: func(s Stats) bool {
				return s.QuestionsAnswered >= 50 && s.OverallAccuracy >= 0.90
			},
		},
		{
			ID:          "week-on-air",
			Title:       "Week On Air",
			Description: "Keep a 7-day study streak",
			Tier:        TierSilver,
			Points:      25,
			Rule:        func(s Stats) bool { return s.LongestStreak >= 7 },
		},
		{
			ID:          "month-on-air",
			Title:       "Month On Air",
			Description: "Keep a 30-day study streak",
			Tier:        TierGold,
			Points:      50,
			Rule:        func(s Stats) bool { return s.LongestStreak >= 30 },
		},
		{
			ID:          "checkpoint",
			Title:       "Checkpoint",
			Description: "Complete a full practice exam",
			Tier:        TierBronze,
			Points:      10,
			Rule:        func(s Stats) bool { return s.ExamsCompleted >= 1 },
		},
		{
			ID:          "first-pass",
			Title:       "First Pass",
			Description: "Pass a full practice exam",
			Tier:        TierGold,
			Points:      50,
			Rule:        func(s Stats) bool { return s.ExamsPassed >= 1 },
		},
		{
			ID:          "triple-pass",
			Title:       "Triple Pass",
			Description: "Pass three full practice exams",
			Tier:        TierPlatinum,
			Points:      100,
			Rule:        func(s Stats) bool { return s.ExamsPassed >= 3 },
		},
		{
			ID:          "exam-ready",
			Title:       "Exam Ready",
			Description: "Reach 80% readiness for any license class",
			Tier:        TierGold,
			Points:      50,
			Rule:        func(s Stats) bool { return s.BestReadiness >= 0.80 },
		},
	}
}
