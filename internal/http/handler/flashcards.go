package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/service"
)

type reviewRequest struct {
	Correct *bool `json:"correct"`
}

// GetFlashcard returns one flashcard by ID.
func GetFlashcard(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		card, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(card)
	}
}

// DocumentFlashcards lists a document's flashcards, hardest first.
func DocumentFlashcards(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		cards, err := svc.ListByDocument(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cards)
	}
}

// ReviewFlashcard records one review outcome.
//
// @Summary Record a flashcard review
// @Tags flashcards
// @Accept json
// @Produce json
// @Param id path string true "flashcard id"
// @Param review body reviewRequest true "outcome"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /flashcards/{id}/review [post]
func ReviewFlashcard(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		var req reviewRequest
		if err := c.BodyParser(&req); err != nil || req.Correct == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be {\"correct\": true|false}")
		}

		card, err := svc.Review(c.UserContext(), id, *req.Correct)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"status":    "success",
			"correct":   *req.Correct,
			"flashcard": card,
		})
	}
}

// FlashcardsForReview lists cards due for study, never reviewed first.
func FlashcardsForReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		cards, err := svc.ForReview(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cards)
	}
}
