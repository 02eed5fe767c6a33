package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tutorapi/internal/generator"
	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

const (
	ExportCSV  = "csv"
	ExportAnki = "anki"

	maxQuizQuestions = 20
)

const aiProbeText = `Machine learning is a branch of artificial intelligence that focuses on building systems that learn from data.
Deep learning is a subset of machine learning that uses neural networks with multiple layers.
Natural language processing enables computers to understand and generate human language.`

// Export is a downloadable rendering of study material.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

// AIProbeResult reports whether the language model answers with usable concepts.
type AIProbeResult struct {
	Status    string          `json:"status"`
	Concepts  []model.Concept `json:"concepts"`
	AIWorking bool            `json:"ai_working"`
	Message   string          `json:"message,omitempty"`
}

// StudyService serves the material derived from processed documents.
type StudyService interface {
	Concepts(ctx context.Context, documentID string) ([]model.Concept, error)
	StudyPlan(ctx context.Context, documentID string) (string, error)
	Quiz(ctx context.Context, documentID string, n int) ([]model.QuizQuestion, error)
	ExportFlashcards(ctx context.Context, documentID, format string) (*Export, error)
	ExportSummary(ctx context.Context, documentID string) (*Export, error)
	Progress(ctx context.Context) (*model.StudyProgress, error)
	ProbeAI(ctx context.Context) *AIProbeResult
}

type studyService struct {
	docs     repository.DocumentRepository
	concepts repository.ConceptRepository
	cards    repository.FlashcardRepository
	gen      generator.Generator
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewStudyService constructs a new StudyService. loc decides where a study day starts.
func NewStudyService(docs repository.DocumentRepository, concepts repository.ConceptRepository, cards repository.FlashcardRepository, gen generator.Generator, loc *time.Location, logger *slog.Logger) StudyService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &studyService{
		docs:     docs,
		concepts: concepts,
		cards:    cards,
		gen:      gen,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *studyService) Concepts(ctx context.Context, documentID string) ([]model.Concept, error) {
	if _, err := findDocument(ctx, s.docs, documentID); err != nil {
		return nil, err
	}
	return s.concepts.ListByDocument(ctx, documentID)
}

// requireConcepts fails with ErrInvalidInput until the document has been processed.
func (s *studyService) requireConcepts(ctx context.Context, documentID string) ([]model.Concept, error) {
	concepts, err := s.Concepts(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if len(concepts) == 0 {
		return nil, fmt.Errorf("%w: no concepts found - process document first", ErrInvalidInput)
	}
	return concepts, nil
}

func (s *studyService) StudyPlan(ctx context.Context, documentID string) (string, error) {
	concepts, err := s.requireConcepts(ctx, documentID)
	if err != nil {
		return "", err
	}
	plan, err := s.gen.StudyPlan(ctx, concepts)
	if err != nil {
		return "", fmt.Errorf("%w: study plan: %v", ErrUpstream, err)
	}
	return plan, nil
}

func (s *studyService) Quiz(ctx context.Context, documentID string, n int) ([]model.QuizQuestion, error) {
	if n < 1 || n > maxQuizQuestions {
		return nil, fmt.Errorf("%w: num_questions must be between 1 and %d", ErrInvalidInput, maxQuizQuestions)
	}
	concepts, err := s.requireConcepts(ctx, documentID)
	if err != nil {
		return nil, err
	}
	qs, err := s.gen.Quiz(ctx, concepts, n)
	if err != nil {
		return nil, fmt.Errorf("%w: quiz: %v", ErrUpstream, err)
	}
	return qs, nil
}

var ankiFlattener = strings.NewReplacer("\t", " ", "\r\n", "<br>", "\n", "<br>", "\r", "<br>")

func (s *studyService) ExportFlashcards(ctx context.Context, documentID, format string) (*Export, error) {
	if format == "" {
		format = ExportCSV
	}
	if format != ExportCSV && format != ExportAnki {
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}
	if _, err := findDocument(ctx, s.docs, documentID); err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if format == ExportAnki {
		buf.WriteString("#separator:tab\n#html:true\n")
		for _, c := range cards {
			fmt.Fprintf(&buf, "%s\t%s\n", ankiFlattener.Replace(c.Question), ankiFlattener.Replace(c.Answer))
		}
		return &Export{
			Filename:    fmt.Sprintf("flashcards_%s.txt", documentID),
			ContentType: "text/plain; charset=utf-8",
			Body:        buf.Bytes(),
		}, nil
	}

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"front", "back"})
	for _, c := range cards {
		_ = w.Write([]string{c.Question, c.Answer})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &Export{
		Filename:    fmt.Sprintf("flashcards_%s.csv", documentID),
		ContentType: "text/csv; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

func (s *studyService) ExportSummary(ctx context.Context, documentID string) (*Export, error) {
	doc, err := findDocument(ctx, s.docs, documentID)
	if err != nil {
		return nil, err
	}
	concepts, err := s.concepts.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary: %s\n\n## Key Concepts\n\n", doc.Name)
	for _, c := range concepts {
		fmt.Fprintf(&b, "### %s %s\n%s\n\n", c.Title, strings.Repeat("★", model.ImportanceStars(c.Importance)), c.Explanation)
	}
	return &Export{
		Filename:    fmt.Sprintf("summary_%s.md", documentID),
		ContentType: "text/markdown; charset=utf-8",
		Body:        []byte(b.String()),
	}, nil
}

func (s *studyService) Progress(ctx context.Context) (*model.StudyProgress, error) {
	docs, err := s.docs.Count(ctx)
	if err != nil {
		return nil, err
	}
	concepts, err := s.concepts.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.cards.Stats(ctx)
	if err != nil {
		return nil, err
	}
	times, err := s.cards.ReviewTimes(ctx)
	if err != nil {
		return nil, err
	}

	total := stats.Correct + stats.Incorrect
	return &model.StudyProgress{
		DocumentsStudied:   docs,
		ConceptsLearned:    concepts,
		FlashcardsReviewed: total,
		CorrectAnswers:     stats.Correct,
		TotalAnswers:       total,
		StreakDays:         StreakDays(times, s.now(), s.loc),
	}, nil
}

// StreakDays counts consecutive calendar days in loc that contain a review,
// ending today or, when nothing was reviewed today yet, yesterday.
func StreakDays(reviews []time.Time, now time.Time, loc *time.Location) int {
	days := make(map[string]struct{}, len(reviews))
	for _, t := range reviews {
		days[t.In(loc).Format(time.DateOnly)] = struct{}{}
	}

	day := now.In(loc)
	if _, ok := days[day.Format(time.DateOnly)]; !ok {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for {
		if _, ok := days[day.Format(time.DateOnly)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func (s *studyService) ProbeAI(ctx context.Context) *AIProbeResult {
	concepts, err := s.gen.ExtractConcepts(ctx, aiProbeText, "test-doc")
	if err != nil {
		s.logger.WarnContext(ctx, "ai probe failed", "error", err)
		return &AIProbeResult{Status: "error", Concepts: []model.Concept{}, Message: err.Error()}
	}
	return &AIProbeResult{
		Status:    StatusSuccess,
		Concepts:  concepts,
		AIWorking: len(concepts) > 0,
	}
}
