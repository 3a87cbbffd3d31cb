package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/models"
	"github.com/example/inkwell/internal/pricing"
	"github.com/example/inkwell/internal/services"
	"github.com/example/inkwell/internal/utils"
)

var allowedUploadMimes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true,
	"application/vnd.ms-powerpoint":                                             true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"image/jpeg": true,
	"image/png":  true,
}

// PrintOrderHandler manages the print-job upload and quote workflow.
type PrintOrderHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	storage  *services.StorageService
	telegram *services.TelegramService
}

// NewPrintOrderHandler constructs PrintOrderHandler.
func NewPrintOrderHandler(db *gorm.DB, cfg *config.Config, storage *services.StorageService, telegram *services.TelegramService) *PrintOrderHandler {
	return &PrintOrderHandler{db: db, cfg: cfg, storage: storage, telegram: telegram}
}

type estimateRequest struct {
	PaperSize string `json:"paper_size"`
	ColorMode string `json:"color_mode"`
	PageCount int    `json:"page_count"`
	Binding   string `json:"binding"`
	Urgency   string `json:"urgency"`
}

// Estimate quotes a print job without creating an order.
func (h *PrintOrderHandler) Estimate(c *fiber.Ctx) error {
	var req estimateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	cost := pricing.Estimate(pricing.Job{
		PaperSize: req.PaperSize,
		ColorMode: req.ColorMode,
		PageCount: req.PageCount,
		Binding:   req.Binding,
		Urgency:   req.Urgency,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"estimated_cost": cost},
	})
}

// CreatePrintOrder accepts a multipart submission with job parameters and an
// optional file. A rejected file fails the whole request before anything is
// persisted.
func (h *PrintOrderHandler) CreatePrintOrder(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := normalizeEmail(c.FormValue("email"))
	phone := c.FormValue("phone")
	pageCount, _ := strconv.Atoi(c.FormValue("page_count"))

	if name == "" || email == "" || phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and phone are required")
	}
	if pageCount < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "page_count must be at least 1")
	}

	paperSize := c.FormValue("paper_size", models.PaperA4)
	colorMode := c.FormValue("color_mode", models.ColorModeBW)
	binding := c.FormValue("binding", models.BindingNone)
	urgency := c.FormValue("urgency", models.UrgencyNormal)
	instructions := c.FormValue("instructions")

	if !models.ValidPaperSize(paperSize) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown paper size")
	}
	if !models.ValidColorMode(colorMode) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown color mode")
	}
	if !models.ValidBinding(binding) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown binding")
	}
	if !models.ValidUrgency(urgency) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown urgency")
	}
	if len(instructions) > 500 {
		return fiber.NewError(fiber.StatusBadRequest, "instructions must be 500 characters or fewer")
	}

	order := models.PrintOrder{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PaperSize:    paperSize,
		ColorMode:    colorMode,
		PageCount:    pageCount,
		Binding:      binding,
		Urgency:      urgency,
		Instructions: instructions,
		Status:       models.PrintStatusPending,
	}
	order.EstimatedCost = pricing.Estimate(pricing.Job{
		PaperSize: paperSize,
		ColorMode: colorMode,
		PageCount: pageCount,
		Binding:   binding,
		Urgency:   urgency,
	})

	if file, err := c.FormFile("file"); err == nil && file != nil {
		if err := validateUploadedFile(file, h.cfg.UploadMaxBytes); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		content, err := file.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
		}
		defer content.Close()

		stored, err := h.storage.Upload(file.Filename, file.Header.Get("Content-Type"), content)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "file upload failed, please retry")
		}

		order.FileURL = stored.URL
		order.FileName = file.Filename
		order.FileSize = file.Size
		order.FileMime = file.Header.Get("Content-Type")
		order.StorageID = stored.ID
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	go h.notifyPrintOrder(order)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// validateUploadedFile enforces the size cap and MIME allowlist. A file of
// exactly the cap is accepted.
func validateUploadedFile(file *multipart.FileHeader, maxBytes int64) error {
	if file.Size > maxBytes {
		return fmt.Errorf("file exceeds the %d MB limit", maxBytes/(1024*1024))
	}
	mime := file.Header.Get("Content-Type")
	if !allowedUploadMimes[mime] {
		return fmt.Errorf("unsupported file type %q", mime)
	}
	return nil
}

func (h *PrintOrderHandler) notifyPrintOrder(order models.PrintOrder) {
	if h.telegram == nil {
		return
	}
	err := h.telegram.NotifyPrintOrder(services.PrintOrderNotification{
		OrderID:       order.ID.String(),
		Name:          order.Name,
		Phone:         order.Phone,
		PaperSize:     order.PaperSize,
		ColorMode:     order.ColorMode,
		PageCount:     order.PageCount,
		Binding:       order.Binding,
		Urgency:       order.Urgency,
		EstimatedCost: order.EstimatedCost,
		HasFile:       order.StorageID != "",
	})
	if err != nil {
		log.Printf("[PrintOrder] Telegram notification failed for %s: %v", order.ID, err)
	}
}

// ListPrintOrders returns paginated print orders with search and status
// filters. Admin only.
func (h *PrintOrderHandler) ListPrintOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.PrintOrder{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.PrintOrder
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pg.Meta(total),
	})
}

// GetPrintOrder returns a single print order. Admin only.
func (h *PrintOrderHandler) GetPrintOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.PrintOrder
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "print order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

type updatePrintOrderRequest struct {
	Status    string `json:"status"`
	FinalCost *int   `json:"final_cost"`
}

// UpdatePrintOrder transitions status or sets the final cost. Admin only.
func (h *PrintOrderHandler) UpdatePrintOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updatePrintOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" && req.FinalCost == nil {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}
	if req.Status != "" && !models.ValidPrintStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown print order status")
	}
	if req.FinalCost != nil && *req.FinalCost < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "final_cost must not be negative")
	}

	var order models.PrintOrder
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "print order not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.FinalCost != nil {
		updates["final_cost"] = *req.FinalCost
	}

	if err := h.db.Model(&order).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// DeletePrintOrder removes a print order and its stored file. Admin only.
func (h *PrintOrderHandler) DeletePrintOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.PrintOrder
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "print order not found")
		}
		return err
	}

	if order.StorageID != "" {
		if err := h.storage.Delete(order.StorageID); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "could not delete stored file, please retry")
		}
	}

	if err := h.db.Delete(&order).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
