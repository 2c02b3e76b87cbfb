package bizconfig

import (
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (bizconfig.Source, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		return NewPostgresSource(pool), nil
	})
	do.Provide(injector, func(i do.Injector) (*bizconfig.Resolver, error) {
		source := do.MustInvoke[bizconfig.Source](i)
		return bizconfig.NewResolver(source), nil
	})
}
