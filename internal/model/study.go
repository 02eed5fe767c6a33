package model

// QuizQuestion is a multiple choice question with four options.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// StudyProgress aggregates review activity.
type StudyProgress struct {
	DocumentsStudied   int `json:"documents_studied"`
	ConceptsLearned    int `json:"concepts_learned"`
	FlashcardsReviewed int `json:"flashcards_reviewed"`
	CorrectAnswers     int `json:"correct_answers"`
	TotalAnswers       int `json:"total_answers"`
	StreakDays         int `json:"streak_days"`
}
