package email

import (
	"context"
	"fmt"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueRateChangeNotice queues a rate-change confirmation email.
func (s *Service) QueueRateChangeNotice(ctx context.Context, input adapter.QueueRateChangeNoticeInput) error {
	subject := fmt.Sprintf("Rate change for %q starting %s - FIRE Plan", input.Description, input.EffectiveMonth)

	templateData := map[string]interface{}{
		"user_name":       input.UserName,
		"description":     input.Description,
		"old_amount":      input.OldAmount,
		"new_amount":      input.NewAmount,
		"effective_month": input.EffectiveMonth,
	}

	job := entity.NewEmailJob(
		entity.TemplateRateChangeNotice,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue rate change notice",
			err,
		)
	}

	return nil
}

// QueueGoalReachedEmail queues a goal-reached alert email.
func (s *Service) QueueGoalReachedEmail(ctx context.Context, input adapter.QueueGoalReachedInput) error {
	subject := fmt.Sprintf("You reached your goal %q - FIRE Plan", input.GoalName)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"goal_name":     input.GoalName,
		"target_amount": input.TargetAmount,
		"saved_amount":  input.SavedAmount,
	}

	job := entity.NewEmailJob(
		entity.TemplateGoalReached,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue goal reached email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
