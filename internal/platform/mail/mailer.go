package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SscSPs/news_aggregator_app/internal/utils"
)

// Mailer delivers password-reset messages.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to string, resetToken string) error
}

// LogMailer writes reset messages to the structured log instead of sending them.
// With redact set the token never reaches the log; only a short hash of it does.
type LogMailer struct {
	from            string
	frontendBaseURL string
	redact          bool
	logger          *slog.Logger
}

func NewLogMailer(from, frontendBaseURL string, redact bool, logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{from: from, frontendBaseURL: frontendBaseURL, redact: redact, logger: logger}
}

var _ Mailer = (*LogMailer)(nil)

// ResetLink builds the frontend URL a user follows to choose a new password.
func (m *LogMailer) ResetLink(resetToken string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", m.frontendBaseURL, url.QueryEscape(resetToken))
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to string, resetToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	attrs := []any{slog.String("from", m.from), slog.String("to", to)}
	if m.redact {
		attrs = append(attrs, slog.String("reset_token_sha256", utils.HashOpaqueToken(resetToken)[:16]))
	} else {
		attrs = append(attrs, slog.String("reset_link", m.ResetLink(resetToken)))
	}
	m.logger.InfoContext(ctx, "Password reset email queued", attrs...)
	return nil
}
