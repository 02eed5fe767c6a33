package handler

import (
	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/http/middleware"
	"tutorapi/internal/service"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

// currentUsername is the owner key of folders.
func currentUsername(c *fiber.Ctx) string {
	if u := middleware.UserFromCtx(c); u != nil {
		return u.Username
	}
	return ""
}

// CreateFolder creates a folder owned by the caller.
//
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param folder body createFolderRequest true "folder"
// @Success 201 {object} model.Folder
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Security BearerAuth
// @Router /folders [post]
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		f, err := svc.Create(c.UserContext(), service.CreateFolderRequest{
			UserID: currentUsername(c),
			Name:   req.Name,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// ListFolders lists the caller's folders.
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := svc.List(c.UserContext(), currentUsername(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(folders)
	}
}

// DeleteFolder removes one of the caller's folders; linked documents stay.
func DeleteFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), currentUsername(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AddDocumentToFolder links a document into one of the caller's folders.
func AddDocumentToFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docID, folderID := c.Params("id"), c.Params("folder_id")
		if !validID(docID) || !validID(folderID) {
			return invalidID(c)
		}
		if err := svc.AddDocument(c.UserContext(), currentUsername(c), folderID, docID); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"status": "success"})
	}
}

// FolderDocuments lists the documents in one of the caller's folders.
func FolderDocuments(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return invalidID(c)
		}
		docs, err := svc.Documents(c.UserContext(), currentUsername(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}
