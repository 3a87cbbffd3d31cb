package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// MailerService delivers transactional email through an HTTP mail API.
type MailerService struct {
	baseURL       string
	apiKey        string
	sender        string
	publicBaseURL string
	client        *http.Client
}

// NewMailerService creates a new MailerService.
func NewMailerService(baseURL, apiKey, sender, publicBaseURL string) *MailerService {
	return &MailerService{
		baseURL:       baseURL,
		apiKey:        apiKey,
		sender:        sender,
		publicBaseURL: publicBaseURL,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send delivers a single message. Without an API key configured the message
// is logged instead of sent so local flows stay usable.
func (s *MailerService) Send(to, subject, text string) error {
	if s.apiKey == "" {
		log.Printf("[Mailer] Not configured; to=%s subject=%q", to, subject)
		return nil
	}

	body, err := json.Marshal(mailMessage{
		From:    s.sender,
		To:      to,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Mailer] Delivery to %s failed: %v", to, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[Mailer] Unexpected status for %s: %d", to, resp.StatusCode)
		return fmt.Errorf("mailer returned status %d", resp.StatusCode)
	}

	return nil
}

// SendVerificationEmail mails the account-verification link.
func (s *MailerService) SendVerificationEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", s.publicBaseURL, token)
	text := fmt.Sprintf(
		"Hi %s,\n\nConfirm your Inkwell account by opening the link below. It expires in a few minutes.\n\n%s\n",
		name, link,
	)
	return s.Send(to, "Verify your Inkwell account", text)
}

// SendPasswordResetEmail mails the password-reset link.
func (s *MailerService) SendPasswordResetEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.publicBaseURL, token)
	text := fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. Open the link below within the hour to choose a new password. If this wasn't you, ignore this message.\n\n%s\n",
		name, link,
	)
	return s.Send(to, "Reset your Inkwell password", text)
}
