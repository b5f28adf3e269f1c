package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token          string `env:"DISCORD_TOKEN"`
	ApplicationID  string `env:"DISCORD_APPLICATION_ID"`
	GuildID        string `env:"DISCORD_GUILD_ID"`
	DeployGlobally bool   `env:"DEPLOY_GLOBALLY"  envDefault:"false"`
	DeployOnChange bool   `env:"DEPLOY_ON_CHANGE" envDefault:"true"`
	MetricsAddr    string `env:"METRICS_ADDR"     envDefault:":9090"`
	LogLevel       string `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT"       envDefault:"text"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if token := readSecret("discord_token"); token != "" {
		cfg.Token = token
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
