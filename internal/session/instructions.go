package session

import (
	"fmt"
	"strings"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
)

// Voice-activity detection tuning for the model leg. 500ms of silence below
// the 0.5 energy threshold ends the caller's turn.
const (
	vadThreshold         = 0.5
	vadPrefixPaddingMs   = 300
	vadSilenceDurationMs = 500

	audioFormatG711ULaw = "g711_ulaw"

	scheduleAppointmentTool = "schedule_appointment"
)

// BuildSessionConfig produces the one-time session.update body for a call.
// It must reach the model connection before the first audio frame.
func BuildSessionConfig(cfg bizconfig.BusinessConfig, voice string) realtime.SessionConfig {
	return realtime.SessionConfig{
		Modalities:        []string{"text", "audio"},
		Instructions:      buildInstructions(cfg),
		Voice:             voice,
		InputAudioFormat:  audioFormatG711ULaw,
		OutputAudioFormat: audioFormatG711ULaw,
		TurnDetection: &realtime.TurnDetection{
			Type:              "server_vad",
			Threshold:         vadThreshold,
			PrefixPaddingMs:   vadPrefixPaddingMs,
			SilenceDurationMs: vadSilenceDurationMs,
		},
		Tools: []realtime.Tool{scheduleAppointmentToolDefinition()},
	}
}

func buildInstructions(cfg bizconfig.BusinessConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, the phone dispatcher for %s, a %s company.",
		cfg.AgentName, cfg.CompanyName, strings.ToLower(cfg.BusinessType))
	fmt.Fprintf(&b, " Always introduce yourself by name and state that you are calling on behalf of %s.", cfg.CompanyName)
	b.WriteString(" Be warm, concise, and professional; callers are often dealing with an urgent home problem.")

	fmt.Fprintf(&b, "\n\nServices offered: %s.", strings.Join(cfg.ServiceTypes, ", "))
	fmt.Fprintf(&b, " The diagnostic visit costs $%.2f.", cfg.DiagnosticPrice)
	fmt.Fprintf(&b, " After-hours or emergency visits add a $%.2f surcharge.", cfg.EmergencySurcharge)

	fmt.Fprintf(&b, "\nBusiness hours: weekdays %s, Saturday %s, Sunday %s.",
		formatDayHours(cfg.BusinessHours.Weekday),
		formatDayHours(cfg.BusinessHours.Saturday),
		formatDayHours(cfg.BusinessHours.Sunday))

	if cfg.CompanyPhone != "" {
		fmt.Fprintf(&b, "\nThe company callback number is %s.", cfg.CompanyPhone)
	}
	if addr := formatAddress(cfg); addr != "" {
		fmt.Fprintf(&b, "\nThe company is located at %s.", addr)
	}
	if len(cfg.ServiceAreaZips) > 0 {
		fmt.Fprintf(&b, "\nService area zip codes: %s. Politely decline jobs outside this area.",
			strings.Join(cfg.ServiceAreaZips, ", "))
	}

	b.WriteString("\n\nWhen the caller wants to book a visit, collect their name, phone number,")
	b.WriteString(" the service they need, and if possible a preferred date, then call the")
	b.WriteString(" schedule_appointment function. Confirm the booking details back to the caller afterwards.")

	if cfg.CustomPromptAdditions != "" {
		b.WriteString("\n\n")
		b.WriteString(cfg.CustomPromptAdditions)
	}
	return b.String()
}

func formatDayHours(d bizconfig.DayHours) string {
	if d.Closed {
		return "closed"
	}
	return fmt.Sprintf("%s to %s", d.Open, d.Close)
}

func formatAddress(cfg bizconfig.BusinessConfig) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{cfg.AddressLine, cfg.City, cfg.State, cfg.Zip} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func scheduleAppointmentToolDefinition() realtime.Tool {
	return realtime.Tool{
		Type:        "function",
		Name:        scheduleAppointmentTool,
		Description: "Schedule a service appointment for the caller once their name, phone number, and needed service are known.",
		Parameters: realtime.ToolParameters{
			Type: "object",
			Properties: map[string]realtime.ToolProperty{
				"customer_name":  {Type: "string", Description: "Full name of the caller"},
				"customer_phone": {Type: "string", Description: "Callback phone number"},
				"service_type":   {Type: "string", Description: "Which service the caller needs"},
				"preferred_date": {Type: "string", Description: "Preferred appointment date, if the caller gave one"},
				"description":    {Type: "string", Description: "Short description of the problem"},
			},
			Required: []string{"customer_name", "customer_phone", "service_type"},
		},
	}
}
