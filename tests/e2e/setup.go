//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"shop-winback/cmd/bootstrap"
	"shop-winback/cmd/bootstrap/components"
	"shop-winback/internal/pkg/clock"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/usecase/commands"
	"shop-winback/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Now is the instant every e2e run sees: 08:00 in São Paulo.
var Now = time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// Application wiring against fake upstreams
// Returns router, config, runner and fx.App for lifecycle management
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) (*gin.Engine, *commands.CampaignRunner, *fx.App) {
	t.Helper()
	var router *gin.Engine
	var runner *commands.CampaignRunner

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func() config.CampaignConfig { return cfg.Campaign },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.TelemetryModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		// Fixed clock and no pacing so runs finish immediately.
		fx.Decorate(func(clock.Clock) clock.Clock { return clock.NewMockClock(Now) }),
		fx.Decorate(func(commands.WaitPolicy) commands.WaitPolicy { return commands.NoWait{} }),

		fx.Populate(&router, &runner),

		// Start without fx logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not populated")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := runner.Shutdown(ctx); err != nil {
			slog.Warn("campaign runner did not stop", "error", err.Error())
		}
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, runner, app
}

func createTestConfig(shopURL, evolutionURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Shop.BaseURL = shopURL
	cfg.Shop.PageLimit = 2
	cfg.Messaging.Endpoint = evolutionURL
	return cfg
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router    *gin.Engine
	Runner    *commands.CampaignRunner
	Config    config.Config
	Shop      *FakeShop
	WhatsApp  *FakeEvolution
	AuthToken string
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s.Shop = NewFakeShop(t, 2)
	s.WhatsApp = NewFakeEvolution(t)
	s.Config = createTestConfig(s.Shop.Server.URL, s.WhatsApp.Server.URL)
	s.Router, s.Runner, _ = buildE2EApp(t, s.Config)
	s.AuthToken = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, "e2e-operator")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	s.Shop.Reset()
	s.WhatsApp.Reset()
}
