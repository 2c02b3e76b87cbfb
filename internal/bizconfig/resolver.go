package bizconfig

import (
	"context"
	"log/slog"
)

// Source loads the raw configuration records. Either call may return nil
// without error when no active record exists.
type Source interface {
	LoadCompanySettings(ctx context.Context) (*CompanySettings, error)
	LoadAgentConfig(ctx context.Context) (*AgentConfig, error)
}

// Resolver produces the merged snapshot for a new session. It never fails:
// a broken or empty source degrades to the built-in defaults so that a call
// is never blocked on configuration.
type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

func (r *Resolver) Resolve(ctx context.Context) BusinessConfig {
	var company *CompanySettings
	var agent *AgentConfig

	if r.source != nil {
		var err error
		company, err = r.source.LoadCompanySettings(ctx)
		if err != nil {
			slog.Warn("failed to load company settings; using defaults", "error", err)
			company = nil
		}
		agent, err = r.source.LoadAgentConfig(ctx)
		if err != nil {
			slog.Warn("failed to load agent config; using defaults", "error", err)
			agent = nil
		}
	}
	return Merge(company, agent)
}
