// Package config provides Viper-based hierarchical configuration: defaults,
// then an optional config file, then FINPIPE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Data struct {
		BankAccountsDir string `mapstructure:"bank_accounts_dir"`
		CreditCardsDir  string `mapstructure:"credit_cards_dir"`
	} `mapstructure:"data"`

	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`

	Taxonomy struct {
		// Path overrides the embedded taxonomy when set.
		Path string `mapstructure:"path"`
	} `mapstructure:"taxonomy"`
}

// LoadEnv loads a .env file when one exists. Missing files are fine; real
// environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load builds the configuration from defaults, an optional config.yaml and
// the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("database.path", "finance.db")
	v.SetDefault("data.bank_accounts_dir", "data/csv_files/bank_accounts")
	v.SetDefault("data.credit_cards_dir", "data/csv_files/credit_cards")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("taxonomy.path", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".finpipe")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINPIPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &config, nil
}
