package handlers

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/domain/dto"
	"geoshare/domain/services"
	"geoshare/pkg/logger"
	"geoshare/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates an account and returns a token for it
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	token, user, err := h.authService.Register(c.UserContext(), req.Email, req.Username, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

// Login authenticates by email or username
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	token, user, err := h.authService.Login(c.UserContext(), req.Login, req.Password)
	if err != nil {
		logger.AuthError("login_failed", "Login attempt failed", err, map[string]interface{}{
			"ip": c.IP(),
		})
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

// GetCurrentUser returns the authenticated account
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	user, err := h.authService.GetCurrentUser(c.UserContext(), userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
