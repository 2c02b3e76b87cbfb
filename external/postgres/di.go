package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
)

const databaseInitTimeout = 15 * time.Second

// RegisterDI provides the shared connection pool to the record store owned by
// the surrounding application. The bridge never creates schema; it only reads
// configuration rows and updates call rows in place.
func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*pgxpool.Pool, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ctx, cancel := context.WithTimeout(context.Background(), databaseInitTimeout)
		defer cancel()

		p, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect database: %w", err)
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return p, nil
	})
}
