// Package notify is the fire-and-forget seam to the external notification
// delivery system. Dispatch failures are logged and swallowed; they never
// fail the triggering business operation.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notification categories the core emits.
const (
	CategoryApplicationApproved = "application_approved"
	CategoryApplicationRejected = "application_rejected"
	CategoryShiftEscalated      = "shift_escalated"
	CategoryBlankStatusChanged  = "blank_status_changed"
)

// RecipientAdmin addresses the HR/admin group rather than one person.
const RecipientAdmin = "hr_admin"

type Notifier interface {
	Notify(ctx context.Context, recipientID, category string, payload map[string]any) error
}

// LogNotifier records every dispatch in the structured log. Real delivery
// (mail/push) is an external collaborator wired in its place.
type LogNotifier struct{ log *zap.Logger }

func NewLogNotifier(log *zap.Logger) *LogNotifier { return &LogNotifier{log: log} }

func (n *LogNotifier) Notify(ctx context.Context, recipientID, category string, payload map[string]any) error {
	n.log.Info("notification dispatched",
		zap.String("recipient_id", recipientID),
		zap.String("category", category),
		zap.Any("payload", payload),
	)
	return nil
}
