package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/service"
)

// DocumentConcepts lists a document's concepts, most important first.
func DocumentConcepts(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		concepts, err := svc.Concepts(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(concepts)
	}
}

// StudyPlan asks the model for a markdown plan over the document's concepts.
func StudyPlan(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		plan, err := svc.StudyPlan(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"study_plan": plan})
	}
}

// Quiz generates multiple choice questions.
//
// @Summary Generate a quiz
// @Tags study
// @Produce json
// @Param id path string true "document id"
// @Param num_questions query int false "1..20" default(5)
// @Success 200 {array} model.QuizQuestion
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /documents/{id}/quiz [get]
func Quiz(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		n, err := strconv.Atoi(c.Query("num_questions", "5"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NUM_QUESTIONS", "invalid num_questions")
		}
		qs, err := svc.Quiz(c.UserContext(), id, n)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(qs)
	}
}

func sendExport(c *fiber.Ctx, e *service.Export) error {
	c.Set(fiber.HeaderContentType, e.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", e.Filename))
	return c.Send(e.Body)
}

// ExportFlashcards downloads the deck as CSV or as an Anki import file.
func ExportFlashcards(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		e, err := svc.ExportFlashcards(c.UserContext(), id, c.Query("format", service.ExportCSV))
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendExport(c, e)
	}
}

// ExportSummary downloads a markdown summary of the concepts.
func ExportSummary(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		e, err := svc.ExportSummary(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendExport(c, e)
	}
}

// ProbeAI runs concept extraction on a fixed sample. It always answers 200 and
// reports failures in the body.
func ProbeAI(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.ProbeAI(c.UserContext()))
	}
}
