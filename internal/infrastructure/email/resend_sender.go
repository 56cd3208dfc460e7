// Package email implementa o envio de e-mails transacionais via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/estoquelab/confere-api/internal/application/auth"
)

var _ auth.EmailSender = (*ResendSender)(nil)

// ResendSender envia e-mails pela API do Resend.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender constrói o sender com a chave de API e o remetente padrão.
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send envia um único e-mail HTML.
func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: enviar e-mail: %w", err)
	}
	return nil
}
