package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/cognitax/cognitax/internal/tax"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Cognitax"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"cognitax"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
	}

	Gemini struct {
		APIKey  string        `envconfig:"GEMINI_API_KEY"`
		Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
		Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"20s"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Tax struct {
		GSTRate      float64 `envconfig:"TAX_GST_RATE" default:"0.18"`
		GSTThreshold int64   `envconfig:"TAX_GST_THRESHOLD" default:"2000000"`
		ITRRate      float64 `envconfig:"TAX_ITR_RATE" default:"0.30"`
		ITRExemption int64   `envconfig:"TAX_ITR_EXEMPTION" default:"250000"`
		TDSRate      float64 `envconfig:"TAX_TDS_RATE" default:"0.01"`
		TDSThreshold int64   `envconfig:"TAX_TDS_THRESHOLD" default:"5000000"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// TaxPolicy converts the configured rates into a tax.Policy.
func (c *Config) TaxPolicy() tax.Policy {
	return tax.Policy{
		GSTRate:      decimal.NewFromFloat(c.Tax.GSTRate),
		GSTThreshold: decimal.NewFromInt(c.Tax.GSTThreshold),
		ITRRate:      decimal.NewFromFloat(c.Tax.ITRRate),
		ITRExemption: decimal.NewFromInt(c.Tax.ITRExemption),
		TDSRate:      decimal.NewFromFloat(c.Tax.TDSRate),
		TDSThreshold: decimal.NewFromInt(c.Tax.TDSThreshold),
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
