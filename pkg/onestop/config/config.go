// Package config loads the rates and presentation settings for the onestop tools.
//
// Values come from built-in defaults, an optional YAML file and ONESTOP_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment overrides, e.g. ONESTOP_RATES_HST.
const EnvPrefix = "ONESTOP"

// Rates are the pricing constants of a policy quote.
type Rates struct {
	BasicPremium       float64 `mapstructure:"basic_premium"`
	AdditionalDiscount float64 `mapstructure:"additional_discount"`
	ExtraLiability     float64 `mapstructure:"extra_liability"`
	GlassCoverage      float64 `mapstructure:"glass_coverage"`
	LoanerCar          float64 `mapstructure:"loaner_car"`
	HST                float64 `mapstructure:"hst"`
	ProcessingFee      float64 `mapstructure:"processing_fee"`
	Installments       int     `mapstructure:"installments"`
}

// Policy holds policy numbering settings.
type Policy struct {
	FirstNumber int `mapstructure:"first_number"`
}

// Chart holds the terminal bar chart settings.
type Chart struct {
	Height int `mapstructure:"height"`
}

// Log holds logger settings.
type Log struct {
	Level string `mapstructure:"level"`
}

// Config is the complete onestop configuration.
type Config struct {
	Rates  Rates  `mapstructure:"rates"`
	Policy Policy `mapstructure:"policy"`
	Chart  Chart  `mapstructure:"chart"`
	Log    Log    `mapstructure:"log"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Rates: Rates{
			BasicPremium:       869.00,
			AdditionalDiscount: 0.25,
			ExtraLiability:     130.00,
			GlassCoverage:      86.00,
			LoanerCar:          58.00,
			HST:                0.15,
			ProcessingFee:      39.99,
			Installments:       8,
		},
		Policy: Policy{FirstNumber: 1944},
		Chart:  Chart{Height: 12},
		Log:    Log{Level: "warn"},
	}
}

// SetDefaults registers Default on v, so every key is known to env lookups.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("rates.basic_premium", d.Rates.BasicPremium)
	v.SetDefault("rates.additional_discount", d.Rates.AdditionalDiscount)
	v.SetDefault("rates.extra_liability", d.Rates.ExtraLiability)
	v.SetDefault("rates.glass_coverage", d.Rates.GlassCoverage)
	v.SetDefault("rates.loaner_car", d.Rates.LoanerCar)
	v.SetDefault("rates.hst", d.Rates.HST)
	v.SetDefault("rates.processing_fee", d.Rates.ProcessingFee)
	v.SetDefault("rates.installments", d.Rates.Installments)
	v.SetDefault("policy.first_number", d.Policy.FirstNumber)
	v.SetDefault("chart.height", d.Chart.Height)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the configuration into a Config. An empty file skips the config file.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a sensible quote or chart.
func (c Config) Validate() error {
	r := c.Rates
	for name, value := range map[string]float64{
		"basic_premium":   r.BasicPremium,
		"extra_liability": r.ExtraLiability,
		"glass_coverage":  r.GlassCoverage,
		"loaner_car":      r.LoanerCar,
		"hst":             r.HST,
		"processing_fee":  r.ProcessingFee,
	} {
		if value < 0 {
			return fmt.Errorf("rates.%s must not be negative: %v", name, value)
		}
	}
	if r.AdditionalDiscount < 0 || r.AdditionalDiscount > 1 {
		return fmt.Errorf("rates.additional_discount must be between 0 and 1: %v", r.AdditionalDiscount)
	}
	if r.Installments <= 0 {
		return errors.New("rates.installments must be a positive number")
	}
	if c.Chart.Height <= 0 {
		return errors.New("chart.height must be a positive number")
	}
	return nil
}
