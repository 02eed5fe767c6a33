package model

const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// Concept is a key idea derived from a document. Immutable once stored.
type Concept struct {
	ID              string   `json:"id"`
	DocumentID      string   `json:"document_id"`
	Title           string   `json:"title"`
	Explanation     string   `json:"explanation"`
	Importance      string   `json:"importance"`
	RelatedConcepts []string `json:"related_concepts"`
}

// NormalizeImportance maps anything outside high|medium|low to medium.
func NormalizeImportance(s string) string {
	switch s {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
		return s
	}
	return ImportanceMedium
}

// ImportanceStars is the star rating used in exported summaries.
func ImportanceStars(importance string) int {
	switch importance {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	}
	return 1
}
