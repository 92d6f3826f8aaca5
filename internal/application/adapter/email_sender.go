// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueRateChangeNoticeInput represents the input for queueing a rate-change
// confirmation email.
type QueueRateChangeNoticeInput struct {
	UserEmail      string
	UserName       string
	Description    string
	OldAmount      string
	NewAmount      string
	EffectiveMonth string
}

// QueueGoalReachedInput represents the input for queueing a goal-reached alert.
type QueueGoalReachedInput struct {
	UserEmail    string
	UserName     string
	GoalName     string
	TargetAmount string
	SavedAmount  string
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueueRateChangeNotice queues a rate-change confirmation email.
	QueueRateChangeNotice(ctx context.Context, input QueueRateChangeNoticeInput) error

	// QueueGoalReachedEmail queues a goal-reached alert email.
	QueueGoalReachedEmail(ctx context.Context, input QueueGoalReachedInput) error
}
