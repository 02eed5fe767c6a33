// Package generator turns document text into study material by prompting a
// language model and decoding its replies.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"tutorapi/internal/llm"
	"tutorapi/internal/model"
)

const snippetLen = 200

// Generator derives concepts, flashcards, study plans and quizzes.
// Errors are returned only when the model call itself fails; replies that
// cannot be parsed yield empty results.
type Generator interface {
	ExtractConcepts(ctx context.Context, text, documentID string) ([]model.Concept, error)
	GenerateFlashcards(ctx context.Context, concept model.Concept) ([]model.Flashcard, error)
	StudyPlan(ctx context.Context, concepts []model.Concept) (string, error)
	Quiz(ctx context.Context, concepts []model.Concept, n int) ([]model.QuizQuestion, error)
}

type generator struct {
	llm       llm.Completer
	maxSample int
	logger    *slog.Logger
	newID     func() string
}

// New returns a Generator that samples at most maxSample characters of a
// document before asking for concepts.
func New(c llm.Completer, maxSample int, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &generator{
		llm:       c,
		maxSample: maxSample,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

type conceptReply struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Importance  string `json:"importance"`
}

func (g *generator) ExtractConcepts(ctx context.Context, text, documentID string) ([]model.Concept, error) {
	raw, err := g.llm.Complete(ctx, fmt.Sprintf(conceptsPrompt, Sample(text, g.maxSample)))
	if err != nil {
		return nil, err
	}

	var replies []conceptReply
	if !llm.DecodeJSON(raw, &replies) {
		g.logger.WarnContext(ctx, "unparseable concept reply",
			"document_id", documentID,
			"raw", llm.Snippet(raw, snippetLen),
		)
		return []model.Concept{}, nil
	}

	out := make([]model.Concept, 0, len(replies))
	for _, r := range replies {
		c := model.Concept{
			ID:              g.newID(),
			DocumentID:      documentID,
			Title:           strings.TrimSpace(r.Title),
			Explanation:     strings.TrimSpace(r.Explanation),
			Importance:      model.NormalizeImportance(strings.ToLower(strings.TrimSpace(r.Importance))),
			RelatedConcepts: []string{},
		}
		if c.Title == "" {
			c.Title = "Untitled"
		}
		if c.Explanation == "" {
			c.Explanation = "No explanation"
		}
		out = append(out, c)
	}
	return out, nil
}

type flashcardReply struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (g *generator) GenerateFlashcards(ctx context.Context, concept model.Concept) ([]model.Flashcard, error) {
	raw, err := g.llm.Complete(ctx, fmt.Sprintf(flashcardsPrompt, concept.Title, concept.Explanation))
	if err != nil {
		return nil, err
	}

	var replies []flashcardReply
	if !llm.DecodeJSON(raw, &replies) {
		g.logger.WarnContext(ctx, "unparseable flashcard reply",
			"concept_id", concept.ID,
			"raw", llm.Snippet(raw, snippetLen),
		)
		return []model.Flashcard{}, nil
	}

	conceptID := concept.ID
	out := make([]model.Flashcard, 0, len(replies))
	for _, r := range replies {
		q, a := strings.TrimSpace(r.Question), strings.TrimSpace(r.Answer)
		if q == "" || a == "" {
			continue
		}
		out = append(out, model.Flashcard{
			ID:         g.newID(),
			ConceptID:  &conceptID,
			DocumentID: concept.DocumentID,
			Question:   q,
			Answer:     a,
			Difficulty: model.DefaultDifficulty,
		})
	}
	return out, nil
}

func (g *generator) StudyPlan(ctx context.Context, concepts []model.Concept) (string, error) {
	raw, err := g.llm.Complete(ctx, fmt.Sprintf(studyPlanPrompt, titleList(concepts)))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (g *generator) Quiz(ctx context.Context, concepts []model.Concept, n int) ([]model.QuizQuestion, error) {
	raw, err := g.llm.Complete(ctx, fmt.Sprintf(quizPrompt, n, titleList(concepts)))
	if err != nil {
		return nil, err
	}

	var questions []model.QuizQuestion
	var wrapped struct {
		Questions []model.QuizQuestion `json:"questions"`
	}
	switch {
	case llm.DecodeJSON(raw, &wrapped) && wrapped.Questions != nil:
		questions = wrapped.Questions
	case llm.DecodeJSON(raw, &questions):
	default:
		g.logger.WarnContext(ctx, "unparseable quiz reply", "raw", llm.Snippet(raw, snippetLen))
		return []model.QuizQuestion{}, nil
	}

	out := make([]model.QuizQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 || q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			continue
		}
		out = append(out, q)
		if len(out) == n {
			break
		}
	}
	return out, nil
}
