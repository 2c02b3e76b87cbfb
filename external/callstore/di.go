package callstore

import (
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/callstore"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (callstore.Recorder, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		return NewPostgresRecorder(pool), nil
	})
	do.Provide(injector, func(i do.Injector) (*callstore.BestEffort, error) {
		recorder := do.MustInvoke[callstore.Recorder](i)
		return callstore.NewBestEffort(recorder), nil
	})
}
