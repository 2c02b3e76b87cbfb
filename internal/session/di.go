package session

import (
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/callstore"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		resolver := do.MustInvoke[*bizconfig.Resolver](i)
		dialer := do.MustInvoke[realtime.Dialer](i)
		recorder := do.MustInvoke[*callstore.BestEffort](i)
		return NewManager(cfg, resolver, dialer, recorder), nil
	})
}
