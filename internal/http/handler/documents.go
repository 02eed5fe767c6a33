package handler

import (
	"strconv"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tutorapi/internal/service"
)

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// ListDocuments pages through documents with limit & offset.
//
// @Summary List documents
// @Tags documents
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.DocumentListResult
// @Failure 400 {object} errorPayload
// @Router /documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadDocument accepts multipart/form-data with the file under field "file".
//
// @Summary Upload a document
// @Tags documents
// @Accept mpfd
// @Produce json
// @Param file formData file true "pdf, docx, csv or txt"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Router /documents [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), f, fh.Filename, fh.Header.Get(fiber.HeaderContentType), fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns document metadata by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DocumentContent returns the extracted text and its length in characters.
//
// @Summary Extracted document text
// @Tags documents
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/content [get]
func DocumentContent(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		text, err := svc.Content(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"content": text, "length": utf8.RuneCountInString(text)})
	}
}

// DeleteDocument removes a document, its derived material and the stored file.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ProcessDocument runs the concept and flashcard pipeline once per document.
//
// @Summary Process a document
// @Tags documents
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} service.ProcessResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /documents/{id}/process [post]
func ProcessDocument(svc service.ProcessingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		res, err := svc.Process(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
