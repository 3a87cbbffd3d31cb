package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/middleware"
	"github.com/example/inkwell/internal/models"
	"github.com/example/inkwell/internal/services"
	"github.com/example/inkwell/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *services.MailerService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, mailer *services.MailerService) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, mailer: mailer}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new unverified account and mails its verification link.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Email = normalizeEmail(req.Email)
	if req.Name == "" || req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}
	if len(req.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "an account with this email already exists")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	token, err := utils.GenerateOpaqueToken()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate verification token")
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	user.SetVerificationToken(token, time.Now().Add(h.cfg.VerificationTokenTTL))

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	if err := h.mailer.SendVerificationEmail(user.Email, user.Name, token); err != nil {
		// The account exists; the caller must know delivery failed so the
		// flow can be retried.
		return fiber.NewError(fiber.StatusBadGateway, "account created but verification email could not be sent")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    user,
		"message": "verification email sent",
	})
}

// VerifyEmail consumes a verification token passed as the token query parameter.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "token is required")
	}

	var user models.User
	if err := h.db.Where("verification_token = ?", token).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
		}
		return err
	}

	verified := user.ConsumeVerificationToken(time.Now())

	// Consumption clears the token fields even when it fails on expiry;
	// persist that before reporting the outcome.
	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	if !verified {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "email verified",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an account and issues the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Email = normalizeEmail(req.Email)
	now := time.Now()

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Same message as a wrong password: no account enumeration.
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	if user.IsLocked(now) {
		return fiber.NewError(fiber.StatusUnauthorized, "account locked due to repeated failed logins, try again later")
	}

	// A lock that has run out also discards the old failure count, so the
	// next mistake starts a fresh window instead of re-locking immediately.
	user.ClearExpiredLock(now)

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		user.RegisterFailedLogin(now, h.cfg.LockoutThreshold, h.cfg.LockoutDuration)
		if err := h.db.Save(&user).Error; err != nil {
			return err
		}
		return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	user.RegisterSuccessfulLogin(now)
	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	token, _, err := utils.GenerateSessionToken(h.cfg.JWTSecret, utils.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		Verified: user.IsVerified,
	}, h.cfg.SessionTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate session token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  now.Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
		"token":   token,
	})
}

// Logout revokes the current session token and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not signed in")
	}

	expires := time.Now().Add(h.cfg.SessionTTL)
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}

	// A replayed logout for the same token is a no-op, not an error.
	revoked := models.RevokedSession{
		TokenID:   claims.ID,
		ExpiresAt: expires,
	}
	if err := h.db.Create(&revoked).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "signed out",
	})
}

// Me returns the account behind the current session.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not signed in")
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid session")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "account not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
