package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"geoshare/domain/dto"
	"geoshare/domain/models"
	"geoshare/domain/repositories"
	"geoshare/domain/services"
	"geoshare/pkg/utils"
)

type AlbumHandler struct {
	albumService services.AlbumService
	photoRepo    repositories.PhotoRepository
}

func NewAlbumHandler(albumService services.AlbumService, photoRepo repositories.PhotoRepository) *AlbumHandler {
	return &AlbumHandler{
		albumService: albumService,
		photoRepo:    photoRepo,
	}
}

// List returns the caller's albums as summaries with resolved cover URLs
func (h *AlbumHandler) List(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	albums, err := h.albumService.ListAlbums(c.UserContext(), userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	responses := make([]dto.AlbumResponse, len(albums))
	for i := range albums {
		responses[i] = *dto.AlbumToResponse(&albums[i], h.coverURL(c, &albums[i]))
	}

	return utils.SuccessResponse(c, dto.AlbumListResponse{
		Albums: responses,
		Total:  len(responses),
	})
}

func (h *AlbumHandler) Create(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	album, err := h.albumService.CreateAlbum(c.UserContext(), userCtx.ID, req.Name, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.AlbumToResponse(album, ""))
}

// Get returns the album detail with its member photos resolved
func (h *AlbumHandler) Get(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	album, photos, err := h.albumService.GetAlbum(c.UserContext(), id, userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.AlbumToResponseWithPhotos(album, h.coverURL(c, album), photos))
}

func (h *AlbumHandler) Update(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	var req dto.UpdateAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	album, err := h.albumService.UpdateAlbum(c.UserContext(), id, userCtx.ID, req.Name, req.Description, req.CoverPhotoID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.AlbumToResponse(album, h.coverURL(c, album)))
}

func (h *AlbumHandler) Delete(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	if err := h.albumService.DeleteAlbum(c.UserContext(), id, userCtx.ID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.MessageResponse(c, "Album deleted")
}

// AddPhotos handles both the single-photo and the batch form of the request
func (h *AlbumHandler) AddPhotos(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	var req dto.AddAlbumPhotosRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	var album *models.Album
	switch {
	case len(req.PhotoIDs) > 0:
		album, err = h.albumService.AddPhotos(c.UserContext(), id, req.PhotoIDs, userCtx.ID)
	case req.PhotoID != nil:
		album, err = h.albumService.AddPhoto(c.UserContext(), id, *req.PhotoID, userCtx.ID)
	default:
		return utils.BadRequestResponse(c, "photo_id or photo_ids is required")
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.AlbumToResponse(album, h.coverURL(c, album)))
}

func (h *AlbumHandler) RemovePhoto(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}
	photoID, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo id")
	}

	album, err := h.albumService.RemovePhoto(c.UserContext(), id, photoID, userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.AlbumToResponse(album, h.coverURL(c, album)))
}

// Containing lists the caller's albums that include the photo
func (h *AlbumHandler) Containing(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	photoID, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo id")
	}

	albums, err := h.albumService.AlbumsContaining(c.UserContext(), photoID, userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	responses := make([]dto.AlbumResponse, len(albums))
	for i := range albums {
		responses[i] = *dto.AlbumToResponse(&albums[i], h.coverURL(c, &albums[i]))
	}

	return utils.SuccessResponse(c, dto.AlbumListResponse{
		Albums: responses,
		Total:  len(responses),
	})
}

// coverURL resolves the cover photo to its URL, tolerating dangling covers.
func (h *AlbumHandler) coverURL(c *fiber.Ctx, album *models.Album) string {
	if album.CoverPhotoID == nil {
		return ""
	}
	photo, err := h.photoRepo.GetByID(c.UserContext(), *album.CoverPhotoID)
	if err != nil || photo == nil {
		return ""
	}
	return photo.URL
}
