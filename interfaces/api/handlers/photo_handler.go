package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"geoshare/domain/dto"
	"geoshare/domain/services"
	"geoshare/pkg/utils"
)

// maxUploadSize caps a single photo upload at 32 MiB.
const maxUploadSize = 32 << 20

type PhotoHandler struct {
	photoService services.PhotoService
	albumService services.AlbumService
}

func NewPhotoHandler(photoService services.PhotoService, albumService services.AlbumService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		albumService: albumService,
	}
}

// Upload accepts a multipart file plus an optional description field
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file field")
	}
	if fileHeader.Size > maxUploadSize {
		return utils.ErrorResponse(c, fiber.StatusRequestEntityTooLarge, "File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.BadRequestResponse(c, "Could not read uploaded file")
	}

	photo, err := h.photoService.Upload(c.UserContext(), userCtx.ID, services.UploadPhotoInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Description: c.FormValue("description"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.PhotoToPhotoResponse(photo))
}

// List returns the caller's photos newest first
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	photos, err := h.photoService.ListByOwner(c.UserContext(), userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.PhotoListResponse{
		Photos: dto.PhotosToPhotoResponses(photos),
		Total:  len(photos),
	})
}

func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo id")
	}

	photo, err := h.photoService.Get(c.UserContext(), id, userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.PhotoToPhotoResponse(photo))
}

// Update changes the photo description, the only mutable field
func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo id")
	}

	var req dto.UpdatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	photo, err := h.photoService.UpdateDescription(c.UserContext(), id, userCtx.ID, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.PhotoToPhotoResponse(photo))
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo id")
	}

	if err := h.photoService.Delete(c.UserContext(), id, userCtx.ID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.MessageResponse(c, "Photo deleted")
}
