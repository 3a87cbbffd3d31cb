package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/models"
	"github.com/example/inkwell/internal/utils"
)

// ContactHandler manages contact-form submissions.
type ContactHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB, cfg *config.Config) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateMessage stores a contact-form submission. Once the stored total
// reaches the configured cap, further submissions are rejected outright.
func (h *ContactHandler) CreateMessage(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Email = normalizeEmail(req.Email)
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email, subject and message are required")
	}

	var total int64
	if err := h.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return err
	}
	if inboxFull(total, h.cfg.ContactMessageCap) {
		return fiber.NewError(fiber.StatusServiceUnavailable, "the contact inbox is full, please try again later")
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.db.Create(&message).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    message,
		"message": "thanks for getting in touch",
	})
}

// inboxFull reports whether the stored-message total has reached the cap, in
// which case new submissions are rejected.
func inboxFull(total int64, cap int) bool {
	return total >= int64(cap)
}

// ListMessages returns paginated contact messages. Admin only.
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.ContactMessage{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       messages,
		"pagination": pg.Meta(total),
	})
}

// DeleteMessage removes a contact message. Admin only.
func (h *ContactHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.ContactMessage{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
