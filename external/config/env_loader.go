package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
)

type envConfig struct {
	Env                string `env:"ENV" envDefault:"production"`
	HTTPListenAddr     string `env:"HTTP_LISTEN_ADDR" envDefault:":8080"`
	PublicHost         string `env:"PUBLIC_HOST,required"`
	DatabaseURL        string `env:"DATABASE_URL,required"`
	OpenAIAPIKey       string `env:"OPENAI_API_KEY,required"`
	OpenAIRealtimeURL  string `env:"OPENAI_REALTIME_URL" envDefault:"wss://api.openai.com/v1/realtime?model=gpt-4o-realtime-preview-2024-10-01"`
	OpenAIVoice        string `env:"OPENAI_VOICE" envDefault:"alloy"`
	MaxCallDurationMin int    `env:"MAX_CALL_DURATION_MIN" envDefault:"30"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                raw.Env,
		HTTPListenAddr:     raw.HTTPListenAddr,
		PublicHost:         raw.PublicHost,
		DatabaseURL:        raw.DatabaseURL,
		OpenAIAPIKey:       raw.OpenAIAPIKey,
		OpenAIRealtimeURL:  raw.OpenAIRealtimeURL,
		OpenAIVoice:        raw.OpenAIVoice,
		MaxCallDurationMin: raw.MaxCallDurationMin,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
