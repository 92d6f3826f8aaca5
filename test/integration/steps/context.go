// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fireplan/backend/internal/application/usecase/goal"
	"github.com/fireplan/backend/internal/application/usecase/insight"
	"github.com/fireplan/backend/internal/application/usecase/ledger"
	"github.com/fireplan/backend/internal/infra/server/router"
	"github.com/fireplan/backend/internal/integration/adapters"
	"github.com/fireplan/backend/internal/integration/cache"
	"github.com/fireplan/backend/internal/integration/email"
	"github.com/fireplan/backend/internal/integration/entrypoint/controller"
	"github.com/fireplan/backend/internal/integration/entrypoint/middleware"
	"github.com/fireplan/backend/internal/integration/persistence"
	"github.com/fireplan/backend/test/integration/mock"
)

// testJWTSecret signs the access tokens minted for scenarios.
const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	userID      uuid.UUID
	userEmail   string
	accessToken string

	// Backing services
	db        *mock.Db
	aiService *mock.AIService

	// Seeded records addressable by name in feature files
	entryIDs map[string]uuid.UUID
	goalIDs  map[string]uuid.UUID
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			entryIDs:       make(map[string]uuid.UUID),
			goalIDs:        make(map[string]uuid.UUID),
			db:             mock.NewDb(),
			aiService:      mock.NewAIService(),
		}

		if err := tc.db.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		tc.aiService.Reset()

		tc.server = httptest.NewServer(buildEngine(tc))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDomainSteps(ctx)
}

// buildEngine wires the full application against the scenario's mocks.
func buildEngine(tc *TestContext) *gin.Engine {
	dbConn := tc.db.DbConn

	ledgerRepo := persistence.NewLedgerRepository(dbConn)
	goalRepo := persistence.NewGoalRepository(dbConn)
	insightRepo := persistence.NewInsightRepository(dbConn)
	emailQueueRepo := persistence.NewEmailQueueRepository(dbConn)

	emailService := email.NewService(emailQueueRepo)
	insightCache := cache.NewInsightCache(mock.NewRedis())
	tokenService := adapters.NewTokenService(testJWTSecret)

	ledgerController := controller.NewLedgerController(
		ledger.NewGetMonthlyViewUseCase(ledgerRepo),
		ledger.NewCreateEntryUseCase(ledgerRepo),
		ledger.NewUpdateEntryUseCase(ledgerRepo),
		ledger.NewDeleteEntryUseCase(ledgerRepo),
		ledger.NewChangeRateUseCase(ledgerRepo, emailService),
	)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo, ledgerRepo, emailService),
		goal.NewCreateGoalUseCase(goalRepo),
		goal.NewUpdateGoalUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo),
	)
	insightController := controller.NewInsightController(
		insight.NewGenerateInsightsUseCase(ledgerRepo, insightRepo, insightCache, tc.aiService),
		insight.NewGetInsightUseCase(insightRepo),
	)
	healthController := controller.NewHealthController(func() bool { return true })
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		ledgerController,
		goalController,
		insightController,
		nil, // rate limiting is exercised in unit tests, not scenarios
		authMiddleware,
	)
	return r.Setup("test")
}

// mintAccessToken signs a valid access token for the scenario's user.
func mintAccessToken(userID uuid.UUID, userEmail string) (string, error) {
	claims := adapters.CustomClaims{
		UserID:    userID.String(),
		Email:     userEmail,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}
