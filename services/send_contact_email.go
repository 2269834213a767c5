package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/techconnect/site-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// EmailSender dispatches a contact message to the configured recipient.
type EmailSender interface {
	SendContactEmail(ctx context.Context, msg ContactMessage, recipient string) error
}

// ResendSender sends contact emails through the Resend API.
//
// Requires environment variables:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_FROM_EMAIL: the sender address (e.g. "Tech&Connect <contato@techconnect.dev>")
type ResendSender struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

func NewResendSender(c map[string]string) (*ResendSender, error) {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := config.GetString(c, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return nil, fmt.Errorf("RESEND_FROM_EMAIL environment variable is required")
	}

	return &ResendSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *ResendSender) SendContactEmail(ctx context.Context, msg ContactMessage, recipient string) error {
	payload := ResendEmailRequest{
		From:    s.fromEmail,
		To:      []string{recipient},
		ReplyTo: msg.SenderEmail,
		Subject: fmt.Sprintf("[Contato] %s", msg.Subject),
		Html:    renderContactBody(msg),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact email via Resend")
	}

	return nil
}

func renderContactBody(msg ContactMessage) string {
	return fmt.Sprintf(
		"<p><strong>Nome:</strong> %s</p><p><strong>Email:</strong> %s</p><p>%s</p>",
		html.EscapeString(msg.SenderName),
		html.EscapeString(msg.SenderEmail),
		html.EscapeString(msg.Message),
	)
}
