package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"geoshare/domain/dto"
	"geoshare/domain/models"
	"geoshare/domain/services"
	"geoshare/pkg/config"
	"geoshare/pkg/utils"
)

type ShareHandler struct {
	shareService services.ShareLinkService
	frontendURL  string
}

func NewShareHandler(shareService services.ShareLinkService, cfg *config.Config) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		frontendURL:  cfg.Share.FrontendURL,
	}
}

// CreatePhotoShare creates a share link for one of the caller's photos
func (h *ShareHandler) CreatePhotoShare(c *fiber.Ctx) error {
	return h.create(c, models.ShareTypePhoto)
}

// CreateAlbumShare creates a share link for one of the caller's albums
func (h *ShareHandler) CreateAlbumShare(c *fiber.Ctx) error {
	return h.create(c, models.ShareTypeAlbum)
}

func (h *ShareHandler) create(c *fiber.Ctx, shareType models.ShareType) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateShareRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	in := services.CreateShareLinkInput{
		Title:          req.Title,
		Description:    req.Description,
		Password:       req.Password,
		ExpiresInHours: req.ExpiresInHours,
	}

	var link *models.ShareLink
	if shareType == models.ShareTypePhoto {
		link, err = h.shareService.CreatePhotoShareLink(c.UserContext(), req.TargetID, userCtx.ID, in)
	} else {
		link, err = h.shareService.CreateAlbumShareLink(c.UserContext(), req.TargetID, userCtx.ID, in)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.ShareLinkToResponse(link, h.frontendURL, time.Now()))
}

// List returns all of the caller's share links, active or not
func (h *ShareHandler) List(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	links, err := h.shareService.ListForOwner(c.UserContext(), userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ShareLinkListResponse{
		Links: dto.ShareLinksToResponses(links, h.frontendURL, time.Now()),
		Total: len(links),
	})
}

// Get returns one of the caller's links with the shared content resolved
func (h *ShareHandler) Get(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid share link id")
	}

	content, err := h.shareService.GetForOwner(c.UserContext(), id, userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, h.contentResponse(content))
}

func (h *ShareHandler) Deactivate(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid share link id")
	}

	if err := h.shareService.Deactivate(c.UserContext(), id, userCtx.ID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.MessageResponse(c, "Share link deactivated")
}

func (h *ShareHandler) Delete(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid share link id")
	}

	if err := h.shareService.Delete(c.UserContext(), id, userCtx.ID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.MessageResponse(c, "Share link deleted")
}

// ActiveForTarget lists the caller's accessible links for one photo or album
func (h *ShareHandler) ActiveForTarget(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var shareType models.ShareType
	switch strings.ToUpper(c.Params("type")) {
	case string(models.ShareTypePhoto):
		shareType = models.ShareTypePhoto
	case string(models.ShareTypeAlbum):
		shareType = models.ShareTypeAlbum
	default:
		return utils.BadRequestResponse(c, "Invalid share type")
	}

	targetID, err := uuid.Parse(c.Params("targetId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid target id")
	}

	links, err := h.shareService.ActiveLinksForTarget(c.UserContext(), targetID, shareType, userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ShareLinkListResponse{
		Links: dto.ShareLinksToResponses(links, h.frontendURL, time.Now()),
		Total: len(links),
	})
}

// GetInfo is the public pre-view probe: link metadata without content,
// password or view count side effects
func (h *ShareHandler) GetInfo(c *fiber.Ctx) error {
	link, err := h.shareService.GetShareLinkInfo(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ShareLinkToInfoResponse(link))
}

// View is the public content endpoint. The password rides in an optional
// JSON body; protected links answer 401 with require_password until it is
// supplied correctly.
func (h *ShareHandler) View(c *fiber.Ctx) error {
	var req dto.ViewShareRequest
	// The body is optional for open links.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body")
		}
	}

	content, err := h.shareService.ViewSharedContent(c.UserContext(), c.Params("code"), req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, h.contentResponse(content))
}

// contentResponse projects a resolved share onto the wire shape.
func (h *ShareHandler) contentResponse(content *services.SharedContent) *dto.ShareLinkResponse {
	resp := dto.ShareLinkToResponse(content.Link, h.frontendURL, time.Now())
	if content.Photo != nil {
		resp.Photo = dto.PhotoToPhotoResponse(content.Photo)
	}
	if content.Album != nil {
		coverURL := ""
		if content.Album.CoverPhotoID != nil {
			for i := range content.AlbumPhotos {
				if content.AlbumPhotos[i].ID == *content.Album.CoverPhotoID {
					coverURL = content.AlbumPhotos[i].URL
					break
				}
			}
		}
		resp.Album = dto.AlbumToResponse(content.Album, coverURL)
		resp.Photos = dto.PhotosToPhotoResponses(content.AlbumPhotos)
	}
	return resp
}
