package model

import "time"

const (
	DefaultDifficulty = 1.0
	MinDifficulty     = 0.1
	MaxDifficulty     = 3.0
)

// Flashcard is a question/answer pair with its review state.
type Flashcard struct {
	ID             string     `json:"id"`
	ConceptID      *string    `json:"concept_id"`
	DocumentID     string     `json:"document_id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Difficulty     float64    `json:"difficulty"`
	LastReviewed   *time.Time `json:"last_reviewed"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
}

// ReviewCard is the trimmed view returned by the for-review listing.
type ReviewCard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
