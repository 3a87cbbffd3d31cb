package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/models"
	"github.com/example/inkwell/internal/services"
	"github.com/example/inkwell/internal/utils"
)

// PasswordResetHandler manages forgot-password endpoints.
type PasswordResetHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *services.MailerService
}

// NewPasswordResetHandler constructs a PasswordResetHandler.
func NewPasswordResetHandler(db *gorm.DB, cfg *config.Config, mailer *services.MailerService) *PasswordResetHandler {
	return &PasswordResetHandler{db: db, cfg: cfg, mailer: mailer}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a single-use reset token and mails the reset link.
// Unknown emails get the same response as known ones.
func (h *PasswordResetHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Email = normalizeEmail(req.Email)
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	accepted := fiber.Map{
		"success": true,
		"message": "if an account exists for this email, a reset link has been sent",
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(accepted)
		}
		return err
	}

	token, err := utils.GenerateOpaqueToken()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate reset token")
	}

	user.SetResetToken(token, time.Now().Add(h.cfg.ResetTokenTTL))
	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	if err := h.mailer.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "reset email could not be sent, please retry")
	}

	return c.JSON(accepted)
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword consumes a reset token and applies the new password.
func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "token is required")
	}
	if len(req.NewPassword) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	var user models.User
	if err := h.db.Where("reset_token = ?", req.Token).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
		}
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword, h.cfg.BcryptCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	consumed := user.ConsumeResetToken(time.Now(), hash)

	// Consumption clears the token fields even when it fails on expiry;
	// persist that before reporting the outcome.
	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	if !consumed {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password updated successfully",
	})
}
