// Package ses sends operator notifications through Amazon SES.
package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendSubmissionOutcome(ctx context.Context, toEmail, toName string, outcome port.SubmissionOutcome) error {
	var subject, detail string
	if outcome.Status == domain.StatusSuccess {
		subject = fmt.Sprintf("Presentación aceptada: %s (%s) - viaje %s",
			outcome.Operation, outcome.Country.Authority(), outcome.VoyageNumber)
		detail = fmt.Sprintf("La presentación fue aceptada con la referencia externa %s.", outcome.ExternalReference)
	} else {
		subject = fmt.Sprintf("Presentación rechazada: %s (%s) - viaje %s",
			outcome.Operation, outcome.Country.Authority(), outcome.VoyageNumber)
		detail = fmt.Sprintf("La presentación fue rechazada con el código de error %s.", outcome.ErrorCode)
	}

	htmlBody := buildOutcomeHTML(toName, outcome, detail)
	textBody := fmt.Sprintf("Hola %s,\n\nOperación: %s\nAutoridad: %s\nViaje: %s\n\n%s\n\nEquipo AduanaGW",
		toName, outcome.Operation, outcome.Country.Authority(), outcome.VoyageNumber, detail)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildOutcomeHTML(name string, outcome port.SubmissionOutcome, detail string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Resultado de la presentación</h2>
  <p>Hola %s,</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Operación</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Autoridad</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Viaje</td><td>%s</td></tr>
  </table>
  <p>%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">AduanaGW - Pasarela de declaraciones aduaneras</p>
</body>
</html>`, name, outcome.Operation, outcome.Country.Authority(), outcome.VoyageNumber, detail)
}
