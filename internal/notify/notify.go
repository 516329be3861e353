// Package notify delivers registration confirmations to attendees.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Confirmation is the content of one registration confirmation.
type Confirmation struct {
	RecipientName  string
	RecipientEmail string
	EventName      string
	TicketType     string
	SentAt         time.Time
}

// Subject returns the message subject line.
func (c Confirmation) Subject() string {
	return fmt.Sprintf("Registration confirmed: %s", c.EventName)
}

// RenderBody returns the plain-text confirmation message.
func RenderBody(c Confirmation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", c.RecipientName)
	fmt.Fprintf(&b, "Thank you for registering for the event: %s!\n\n", c.EventName)
	fmt.Fprintf(&b, "Your registration for the '%s' ticket has been confirmed.\n", c.TicketType)
	b.WriteString("We look forward to seeing you there.\n\n")
	b.WriteString("Best regards,\nThe Event Management Team\n")
	return b.String()
}

// LogNotifier writes confirmations to the log instead of sending them.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, c Confirmation) error {
	n.logger.InfoContext(ctx, "confirmation sent",
		"to", c.RecipientEmail,
		"subject", c.Subject(),
		"body", RenderBody(c),
	)
	return nil
}
