package notifications

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/anjiri1684/pesuconnect/configs"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type BrevoService struct {
	client      *resty.Client
	SenderEmail string
	SenderName  string
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewEmailService returns nil when Brevo is not configured, so callers can
// skip emails entirely.
func NewEmailService(cfg config.EmailConfig) *BrevoService {
	if !cfg.Enabled() {
		log.Println("⚠️ Email service not configured. Missing API Key or Sender Email.")
		return nil
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("accept", "application/json").
		SetHeader("api-key", cfg.APIKey)

	log.Printf("✅ Email service initialized for sender %s.", cfg.Sender)
	return &BrevoService{
		client:      client,
		SenderEmail: cfg.Sender,
		SenderName:  cfg.SenderName,
	}
}

func (s *BrevoService) SendEmail(ctx context.Context, toName, toEmail, subject, htmlContent string) error {
	at := strings.Index(toEmail, "@")
	if at <= 0 {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}
	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:at]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(payload).
		Post("/v3/smtp/email")
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		msg := gjson.Get(resp.String(), "message").String()
		if msg == "" {
			msg = resp.String()
		}
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode(), msg)
	}

	log.Printf("✅ Email '%s' sent to %s (message %s)", subject, toEmail, gjson.Get(resp.String(), "messageId").String())
	return nil
}
