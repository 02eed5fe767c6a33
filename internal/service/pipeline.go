package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"tutorapi/internal/generator"
	"tutorapi/internal/model"
	"tutorapi/internal/repository"
	"tutorapi/internal/storage"
)

const (
	StatusSuccess          = "success"
	StatusAlreadyProcessed = "already_processed"
	statusFailed           = "failed"
)

// errLostRace aborts the transaction when another run flipped the flag first.
var errLostRace = errors.New("document processed concurrently")

// ProcessResult reports the outcome of a pipeline run.
type ProcessResult struct {
	Status              string `json:"status"`
	ConceptsExtracted   int    `json:"concepts_extracted"`
	FlashcardsGenerated int    `json:"flashcards_generated"`
}

// ProcessingService turns an unprocessed document into concepts and flashcards.
type ProcessingService interface {
	// Process runs the pipeline at most once per document. A processed document
	// yields StatusAlreadyProcessed without touching the extractor or the model.
	Process(ctx context.Context, documentID string) (*ProcessResult, error)
}

// ProcessingDeps are the collaborators of the processing pipeline.
type ProcessingDeps struct {
	Documents  repository.DocumentRepository
	Concepts   repository.ConceptRepository
	Flashcards repository.FlashcardRepository
	Tx         repository.TransactionManager
	Storage    storage.Storage
	Extractor  TextExtractor
	Generator  generator.Generator
	Logger     *slog.Logger
	Metrics    *Metrics
}

type processingService struct {
	docs     repository.DocumentRepository
	concepts repository.ConceptRepository
	cards    repository.FlashcardRepository
	tx       repository.TransactionManager
	text     textLoader
	gen      generator.Generator
	logger   *slog.Logger
	metrics  *Metrics

	inflight singleflight.Group
}

// NewProcessingService constructs a new ProcessingService.
func NewProcessingService(d ProcessingDeps) ProcessingService {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &processingService{
		docs:     d.Documents,
		concepts: d.Concepts,
		cards:    d.Flashcards,
		tx:       d.Tx,
		text:     textLoader{store: d.Storage, extractor: d.Extractor},
		gen:      d.Generator,
		logger:   logger,
		metrics:  d.Metrics,
	}
}

func (s *processingService) Process(ctx context.Context, documentID string) (*ProcessResult, error) {
	if documentID == "" {
		return nil, ErrIDRequired
	}
	// Concurrent calls for one document share a single run.
	v, err, _ := s.inflight.Do(documentID, func() (any, error) {
		return s.process(ctx, documentID)
	})
	if err != nil {
		return nil, err
	}
	res := *v.(*ProcessResult)
	return &res, nil
}

func (s *processingService) process(ctx context.Context, documentID string) (res *ProcessResult, err error) {
	start := time.Now()
	defer func() {
		status := statusFailed
		if err == nil {
			status = res.Status
		}
		s.metrics.observeProcess(status, time.Since(start))
	}()

	doc, err := findDocument(ctx, s.docs, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Processed {
		return &ProcessResult{Status: StatusAlreadyProcessed}, nil
	}

	text, err := s.text.load(ctx, doc)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text content found in document", ErrInvalidInput)
	}

	concepts, err := s.gen.ExtractConcepts(ctx, text, doc.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "concept extraction failed", "document_id", doc.ID, "error", err)
		return nil, fmt.Errorf("%w: concept extraction: %v", ErrUpstream, err)
	}

	cards := make([]model.Flashcard, 0, len(concepts)*3)
	for _, c := range concepts {
		generated, err := s.gen.GenerateFlashcards(ctx, c)
		if err != nil {
			s.logger.WarnContext(ctx, "flashcard generation failed",
				"document_id", doc.ID,
				"concept_id", c.ID,
				"error", err,
			)
			continue
		}
		cards = append(cards, generated...)
	}

	err = s.tx.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.concepts.CreateBatch(ctx, concepts); err != nil {
			return fmt.Errorf("insert concepts: %w", err)
		}
		if err := s.cards.CreateBatch(ctx, cards); err != nil {
			return fmt.Errorf("insert flashcards: %w", err)
		}
		flipped, err := s.docs.MarkProcessed(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("mark processed: %w", err)
		}
		if !flipped {
			return errLostRace
		}
		return nil
	})
	if errors.Is(err, errLostRace) {
		s.logger.InfoContext(ctx, "document processed by a concurrent run", "document_id", doc.ID)
		return &ProcessResult{Status: StatusAlreadyProcessed}, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "pipeline persistence failed", "document_id", doc.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "document processed",
		"document_id", doc.ID,
		"concepts", len(concepts),
		"flashcards", len(cards),
	)
	return &ProcessResult{
		Status:              StatusSuccess,
		ConceptsExtracted:   len(concepts),
		FlashcardsGenerated: len(cards),
	}, nil
}
