package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (shop, credentials, endpoints), security settings
// - default: Values common across all environments (schedule, pacing, timezone, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Shop      ShopConfig
	Messaging MessagingConfig
	Campaign  CampaignConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"ADMIN_PORT" default:"8080"`
}

type ShopConfig struct {
	Name        string        `envconfig:"SHOP_NAME" required:"true"`
	AccessToken string        `envconfig:"SHOP_ACCESS_TOKEN" required:"true"`
	APIVersion  string        `envconfig:"SHOP_API_VERSION" default:"2023-01"`
	PageLimit   int           `envconfig:"SHOP_PAGE_LIMIT" default:"250"`
	RatePerSec  float64       `envconfig:"SHOP_RATE_PER_SEC" default:"2"`
	RateBurst   int           `envconfig:"SHOP_RATE_BURST" default:"4"`
	Timeout     time.Duration `envconfig:"SHOP_TIMEOUT" default:"30s"`
	BaseURL     string        `envconfig:"SHOP_BASE_URL"` // overrides https://{SHOP_NAME}
}

// AdminAPIURL is the versioned admin API root, e.g. https://store.myshopify.com/admin/api/2023-01.
func (c ShopConfig) AdminAPIURL() string {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = "https://" + c.Name
	}
	return base + "/admin/api/" + c.APIVersion
}

type MessagingConfig struct {
	Endpoint string        `envconfig:"EVOLUTION_ENDPOINT" required:"true"`
	Instance string        `envconfig:"EVOLUTION_INSTANCE" required:"true"`
	APIKey   string        `envconfig:"EVOLUTION_API_KEY" required:"true"`
	Timeout  time.Duration `envconfig:"EVOLUTION_TIMEOUT" default:"30s"`
}

type CampaignConfig struct {
	Schedule     string        `envconfig:"CAMPAIGN_SCHEDULE" default:"0 8 * * *"`
	TimeZone     string        `envconfig:"CAMPAIGN_TIMEZONE" default:"America/Sao_Paulo"`
	WindowDays   []int         `envconfig:"CAMPAIGN_WINDOWS" default:"30,60,90,180,365"`
	PacingMin    time.Duration `envconfig:"CAMPAIGN_PACING_MIN" default:"120s"`
	PacingMax    time.Duration `envconfig:"CAMPAIGN_PACING_MAX" default:"300s"`
	CountryCode  string        `envconfig:"CAMPAIGN_COUNTRY_CODE" default:"55"`
	StoreName    string        `envconfig:"CAMPAIGN_STORE_NAME" default:"Fiber"`
	SupportPhone string        `envconfig:"CAMPAIGN_SUPPORT_PHONE" default:"5199692122"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type TelemetryConfig struct {
	Enabled        bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName    string        `envconfig:"TELEMETRY_SERVICE_NAME" default:"shop-winback"`
	Environment    string        `envconfig:"TELEMETRY_ENVIRONMENT" default:"development"`
	OTLPEndpoint   string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	Insecure       bool          `envconfig:"TELEMETRY_INSECURE" default:"true"`
	ExportInterval time.Duration `envconfig:"TELEMETRY_EXPORT_INTERVAL" default:"30s"`
}

// Location resolves the campaign time zone used for schedule and message deadlines.
func (c CampaignConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CAMPAIGN_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c CampaignConfig) Validate() error {
	if len(c.WindowDays) == 0 {
		return fmt.Errorf("CAMPAIGN_WINDOWS must not be empty")
	}
	for _, d := range c.WindowDays {
		if d <= 0 {
			return fmt.Errorf("CAMPAIGN_WINDOWS contains non-positive day count %d", d)
		}
	}
	if c.PacingMin < 0 || c.PacingMax < c.PacingMin {
		return fmt.Errorf("invalid pacing bounds: min=%s max=%s", c.PacingMin, c.PacingMax)
	}
	if c.CountryCode == "" {
		return fmt.Errorf("CAMPAIGN_COUNTRY_CODE must be set")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Campaign.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Shop: ShopConfig{
			Name:        "test-shop.myshopify.com",
			AccessToken: "test-token",
			APIVersion:  "2023-01",
			PageLimit:   250,
			RatePerSec:  1000,
			RateBurst:   1000,
			Timeout:     5 * time.Second,
		},
		Messaging: MessagingConfig{
			Endpoint: "http://localhost:8081",
			Instance: "test-instance",
			APIKey:   "test-api-key",
			Timeout:  5 * time.Second,
		},
		Campaign: CampaignConfig{
			Schedule:     "0 8 * * *",
			TimeZone:     "America/Sao_Paulo",
			WindowDays:   []int{30, 60, 90, 180, 365},
			PacingMin:    120 * time.Second,
			PacingMax:    300 * time.Second,
			CountryCode:  "55",
			StoreName:    "Fiber",
			SupportPhone: "5199692122",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "shop-winback-test",
		},
	}
}
