package realtime

import (
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (realtime.Dialer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewOpenAIDialer(cfg.OpenAIRealtimeURL, cfg.OpenAIAPIKey), nil
	})
}
