package email

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// AlertService sends operational alert emails via SendGrid.
type AlertService struct {
	apiKey     string
	alertEmail string
}

// NewAlertService creates a new alert service instance
func NewAlertService(apiKey, alertEmail string) *AlertService {
	if alertEmail == "" {
		alertEmail = "ops@corlog.app"
	}
	return &AlertService{
		apiKey:     apiKey,
		alertEmail: alertEmail,
	}
}

// SendFormattingFailureAlert notifies the ops inbox that a formatting call
// failed and an entry was saved unformatted. The raw text itself is not
// included; the entry ID is enough to find it.
func (as *AlertService) SendFormattingFailureAlert(businessID, entryID, reason string) error {
	if as.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}

	from := mail.NewEmail("Corlog Pipeline", "noreply@corlog.app")
	to := mail.NewEmail("Ops", as.alertEmail)

	subject := "Correspondence formatting failure"

	body := fmt.Sprintf(`A correspondence entry was saved unformatted after a formatting failure.

Business ID: %s
Entry ID: %s
Timestamp: %s

Reason:
%s`, businessID, entryID, time.Now().Format(time.RFC3339), reason)

	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(as.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
