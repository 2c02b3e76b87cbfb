package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Env                string
	HTTPListenAddr     string
	PublicHost         string
	DatabaseURL        string
	OpenAIAPIKey       string
	OpenAIRealtimeURL  string
	OpenAIVoice        string
	MaxCallDurationMin int
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.MaxCallDurationMin <= 0 {
		return fmt.Errorf("MAX_CALL_DURATION_MIN must be positive, got %d", c.MaxCallDurationMin)
	}
	if strings.Contains(c.PublicHost, "://") {
		return fmt.Errorf("PUBLIC_HOST must be a bare hostname, got %q", c.PublicHost)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "HTTP_LISTEN_ADDR", value: c.HTTPListenAddr},
		{name: "PUBLIC_HOST", value: c.PublicHost},
		{name: "DATABASE_URL", value: c.DatabaseURL},
		{name: "OPENAI_API_KEY", value: c.OpenAIAPIKey},
		{name: "OPENAI_REALTIME_URL", value: c.OpenAIRealtimeURL},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
