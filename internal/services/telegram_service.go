package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService sends admin notifications to a Telegram chat.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// OrderNotification contains retail order data for the admin notification.
type OrderNotification struct {
	OrderNumber      string
	Items            []OrderItemNotification
	Subtotal         float64
	Tax              float64
	Total            float64
	CustomerName     string
	CustomerEmail    string
	CollectionMethod string
}

// OrderItemNotification contains order item data.
type OrderItemNotification struct {
	Name     string
	Quantity int
	Price    float64
}

// FormatPrice formats an amount with thousand separators.
func FormatPrice(amount float64) string {
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// NotifyNewOrder sends a notification about a new retail order to the admin chat.
func (s *TelegramService) NotifyNewOrder(order OrderNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemTotal := item.Price * float64(item.Quantity)
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   %d x %s = %s\n",
			i+1,
			item.Name,
			item.Quantity,
			FormatPrice(item.Price),
			FormatPrice(itemTotal),
		))
	}

	collectionText := "Pickup"
	if order.CollectionMethod == "delivery" {
		collectionText = "Delivery"
	}

	message := fmt.Sprintf(`<b>🛒 NEW ORDER</b>
<b>📋 Order:</b> %s
<b>👤 Customer:</b> %s
<b>✉️ Email:</b> %s
<b>📦 Items:</b>
%s
<b>💰 Total:</b> %s (tax %s)
<b>🚚 Collection:</b> %s
━━━━━━━━━━━━━━━━━━`,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		itemsList.String(),
		FormatPrice(order.Total),
		FormatPrice(order.Tax),
		collectionText,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// PrintOrderNotification contains print job data for the admin notification.
type PrintOrderNotification struct {
	OrderID       string
	Name          string
	Phone         string
	PaperSize     string
	ColorMode     string
	PageCount     int
	Binding       string
	Urgency       string
	EstimatedCost int
	HasFile       bool
}

// NotifyPrintOrder sends a notification about a new print job to the admin chat.
func (s *TelegramService) NotifyPrintOrder(job PrintOrderNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	fileText := "no file"
	if job.HasFile {
		fileText = "file attached"
	}

	message := fmt.Sprintf(`<b>🖨 NEW PRINT JOB</b>
<b>📋 Job:</b> %s
<b>👤 Customer:</b> %s (%s)
<b>📄 Details:</b> %s %s, %d pages, %s binding, %s
<b>📎 Upload:</b> %s
<b>💰 Estimate:</b> %s
━━━━━━━━━━━━━━━━━━`,
		job.OrderID,
		job.Name,
		job.Phone,
		job.PaperSize,
		job.ColorMode,
		job.PageCount,
		job.Binding,
		job.Urgency,
		fileText,
		FormatPrice(float64(job.EstimatedCost)),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
