package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 869.00, cfg.Rates.BasicPremium)
	assert.Equal(t, 0.25, cfg.Rates.AdditionalDiscount)
	assert.Equal(t, 130.00, cfg.Rates.ExtraLiability)
	assert.Equal(t, 86.00, cfg.Rates.GlassCoverage)
	assert.Equal(t, 58.00, cfg.Rates.LoanerCar)
	assert.Equal(t, 0.15, cfg.Rates.HST)
	assert.Equal(t, 39.99, cfg.Rates.ProcessingFee)
	assert.Equal(t, 8, cfg.Rates.Installments)
	assert.Equal(t, 1944, cfg.Policy.FirstNumber)
	assert.Equal(t, 12, cfg.Chart.Height)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadWithoutOverridesIsDefault(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ONESTOP_RATES_HST", "0.13")
	t.Setenv("ONESTOP_POLICY_FIRST_NUMBER", "5000")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.13, cfg.Rates.HST)
	assert.Equal(t, 5000, cfg.Policy.FirstNumber)
	assert.Equal(t, 869.00, cfg.Rates.BasicPremium)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "onestop.yaml")
	content := "rates:\n  basic_premium: 900\n  installments: 12\nchart:\n  height: 20\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, 900.0, cfg.Rates.BasicPremium)
	assert.Equal(t, 12, cfg.Rates.Installments)
	assert.Equal(t, 20, cfg.Chart.Height)
	assert.Equal(t, 0.15, cfg.Rates.HST)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "NegativePremium", mutate: func(c *Config) { c.Rates.BasicPremium = -1 }},
		{name: "NegativeHST", mutate: func(c *Config) { c.Rates.HST = -0.1 }},
		{name: "DiscountAboveOne", mutate: func(c *Config) { c.Rates.AdditionalDiscount = 1.5 }},
		{name: "ZeroInstallments", mutate: func(c *Config) { c.Rates.Installments = 0 }},
		{name: "ZeroChartHeight", mutate: func(c *Config) { c.Chart.Height = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
