package components

import (
	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/domain/customer"
	"shop-winback/internal/pkg/clock"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/usecase"
	"shop-winback/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.CampaignConfig) customer.PhoneNormalizer {
		return customer.NewPhoneNormalizer(cfg.CountryCode)
	},
	func(cfg config.CampaignConfig) (*campaign.Composer, error) {
		loc, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		return campaign.NewComposer(loc, cfg.StoreName, cfg.SupportPhone), nil
	},
	fx.Annotate(
		func(cfg config.CampaignConfig, clk clock.Clock) *commands.RandomWait {
			return commands.NewRandomWait(clk, cfg.PacingMin, cfg.PacingMax)
		},
		fx.As(new(commands.WaitPolicy)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerExtractor,
		commands.NewCampaignUseCase,
		commands.NewCampaignRunner,
		func(r *commands.CampaignRunner) commands.RunController { return r },
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
