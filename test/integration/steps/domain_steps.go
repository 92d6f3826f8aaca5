// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/domain/entity"
	"github.com/fireplan/backend/internal/integration/persistence"
	"github.com/fireplan/backend/internal/integration/persistence/model"
)

// registerDomainSteps registers seeding and verification steps.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I have a recurring (expense|income) entry "([^"]*)" of "([^"]*)" in category "([^"]*)" starting "([^"]*)"$`, iHaveARecurringEntry)
	ctx.Step(`^I have a recurring (expense|income) entry "([^"]*)" of "([^"]*)" in category "([^"]*)" from "([^"]*)" to "([^"]*)"$`, iHaveAClosedRecurringEntry)
	ctx.Step(`^I have a one-off (expense|income) entry "([^"]*)" of "([^"]*)" in category "([^"]*)" on "([^"]*)"$`, iHaveAOneOffEntry)
	ctx.Step(`^another user has a recurring expense entry "([^"]*)" of "([^"]*)" in category "([^"]*)" starting "([^"]*)"$`, anotherUserHasARecurringEntry)
	ctx.Step(`^I have a goal "([^"]*)" with target "([^"]*)"$`, iHaveAGoal)
	ctx.Step(`^I have a goal "([^"]*)" with target "([^"]*)" and alerts enabled$`, iHaveAGoalWithAlerts)
	ctx.Step(`^the AI insight service is unavailable$`, theAIServiceIsUnavailable)
	ctx.Step(`^the AI insight service fails with "([^"]*)"$`, theAIServiceFailsWith)
	ctx.Step(`^a "([^"]*)" email should be queued for "([^"]*)"$`, anEmailShouldBeQueuedFor)
	ctx.Step(`^no emails should be queued$`, noEmailsShouldBeQueued)
}

func iAmAuthenticatedAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	tc.userID = uuid.New()
	tc.userEmail = email

	token, err := mintAccessToken(tc.userID, email)
	if err != nil {
		return ctx, fmt.Errorf("failed to mint access token: %w", err)
	}
	tc.accessToken = token

	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) seedEntry(userID uuid.UUID, kind, description, amount, category, startDate string, recurring bool, endDate string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", startDate, err)
	}

	entry := entity.NewLedgerEntry(
		userID,
		entity.EntryKind(kind),
		entity.EntryCategory(category),
		description,
		parsedAmount,
		parsedDate,
		recurring,
	)

	if endDate != "" {
		parsedEnd, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		entry.EndDate = &parsedEnd
	}

	repo := persistence.NewLedgerRepository(tc.db.DbConn)
	if err := repo.Create(context.Background(), entry); err != nil {
		return fmt.Errorf("failed to seed entry: %w", err)
	}

	// Later entries with the same description overwrite the name; rate
	// history scenarios address the open instance.
	tc.entryIDs[description] = entry.ID
	return nil
}

func iHaveARecurringEntry(ctx context.Context, kind, description, amount, category, startDate string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedEntry(tc.userID, kind, description, amount, category, startDate, true, ""); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveAClosedRecurringEntry(ctx context.Context, kind, description, amount, category, startDate, endDate string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedEntry(tc.userID, kind, description, amount, category, startDate, true, endDate); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveAOneOffEntry(ctx context.Context, kind, description, amount, category, entryDate string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedEntry(tc.userID, kind, description, amount, category, entryDate, false, ""); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func anotherUserHasARecurringEntry(ctx context.Context, description, amount, category, startDate string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedEntry(uuid.New(), "expense", description, amount, category, startDate, true, ""); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) seedGoal(name, target string, alertOnReach bool) error {
	parsedTarget, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}

	g := entity.NewGoal(tc.userID, name, parsedTarget, nil, alertOnReach)

	repo := persistence.NewGoalRepository(tc.db.DbConn)
	if err := repo.Create(context.Background(), g); err != nil {
		return fmt.Errorf("failed to seed goal: %w", err)
	}

	tc.goalIDs[name] = g.ID
	return nil
}

func iHaveAGoal(ctx context.Context, name, target string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedGoal(name, target, false); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveAGoalWithAlerts(ctx context.Context, name, target string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedGoal(name, target, true); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func theAIServiceIsUnavailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.aiService.SetUnavailable()
	return nil
}

func theAIServiceFailsWith(ctx context.Context, message string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.aiService.SetError(errors.New(message))
	return nil
}

func anEmailShouldBeQueuedFor(ctx context.Context, templateType, recipient string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var count int64
	err := tc.db.DbConn.
		Model(&model.EmailQueueModel{}).
		Where("template_type = ? AND recipient_email = ?", templateType, recipient).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to query email queue: %w", err)
	}

	if count == 0 {
		return fmt.Errorf("no %q email queued for %s", templateType, recipient)
	}
	return nil
}

func noEmailsShouldBeQueued(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var count int64
	if err := tc.db.DbConn.Model(&model.EmailQueueModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to query email queue: %w", err)
	}
	if count != 0 {
		return fmt.Errorf("expected an empty email queue, found %d jobs", count)
	}
	return nil
}
