package session

import (
	"strings"
	"testing"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
)

func TestBuildSessionConfig_Shape(t *testing.T) {
	cfg := BuildSessionConfig(bizconfig.Merge(nil, nil), "alloy")

	if cfg.Voice != "alloy" {
		t.Fatalf("unexpected voice: %s", cfg.Voice)
	}
	if cfg.InputAudioFormat != "g711_ulaw" || cfg.OutputAudioFormat != "g711_ulaw" {
		t.Fatalf("unexpected audio formats: %s / %s", cfg.InputAudioFormat, cfg.OutputAudioFormat)
	}
	foundAudio := false
	for _, m := range cfg.Modalities {
		if m == "audio" {
			foundAudio = true
		}
	}
	if !foundAudio {
		t.Fatalf("expected audio modality, got %v", cfg.Modalities)
	}
}

func TestBuildSessionConfig_TurnDetectionExplicit(t *testing.T) {
	cfg := BuildSessionConfig(bizconfig.Merge(nil, nil), "alloy")

	td := cfg.TurnDetection
	if td == nil {
		t.Fatal("expected turn detection config")
	}
	if td.Type != "server_vad" {
		t.Fatalf("unexpected turn detection type: %s", td.Type)
	}
	if td.Threshold != 0.5 {
		t.Fatalf("unexpected threshold: %v", td.Threshold)
	}
	if td.SilenceDurationMs != 500 {
		t.Fatalf("unexpected silence duration: %d", td.SilenceDurationMs)
	}
}

func TestBuildSessionConfig_DeclaresScheduleAppointmentTool(t *testing.T) {
	cfg := BuildSessionConfig(bizconfig.Merge(nil, nil), "alloy")

	if len(cfg.Tools) != 1 {
		t.Fatalf("expected exactly one tool, got %d", len(cfg.Tools))
	}
	tool := cfg.Tools[0]
	if tool.Name != "schedule_appointment" || tool.Type != "function" {
		t.Fatalf("unexpected tool: %+v", tool)
	}
	wantRequired := map[string]bool{"customer_name": true, "customer_phone": true, "service_type": true}
	if len(tool.Parameters.Required) != len(wantRequired) {
		t.Fatalf("unexpected required list: %v", tool.Parameters.Required)
	}
	for _, r := range tool.Parameters.Required {
		if !wantRequired[r] {
			t.Fatalf("unexpected required parameter: %s", r)
		}
	}
	for _, optional := range []string{"preferred_date", "description"} {
		if _, ok := tool.Parameters.Properties[optional]; !ok {
			t.Fatalf("missing optional parameter %s", optional)
		}
	}
}

func TestBuildInstructions_InterpolatesConfig(t *testing.T) {
	name := "Apex Plumbing"
	agent := "Dana"
	price := 120.0
	biz := bizconfig.Merge(
		&bizconfig.CompanySettings{CompanyName: &name, ServiceAreaZips: []string{"94110"}},
		&bizconfig.AgentConfig{AgentName: &agent, DiagnosticPrice: &price},
	)

	got := buildInstructions(biz)
	for _, want := range []string{"Apex Plumbing", "Dana", "$120.00", "94110", "schedule_appointment"} {
		if !strings.Contains(got, want) {
			t.Fatalf("instructions missing %q:\n%s", want, got)
		}
	}
}

func TestBuildInstructions_AlwaysNamesTheCompany(t *testing.T) {
	got := buildInstructions(bizconfig.Merge(nil, nil))
	if !strings.Contains(got, "Fixlify Services") {
		t.Fatalf("default instructions must still name the company:\n%s", got)
	}
}

func TestBuildInstructions_AppendsCustomPrompt(t *testing.T) {
	extra := "Always mention the seasonal discount."
	biz := bizconfig.Merge(nil, &bizconfig.AgentConfig{CustomPromptAdditions: &extra})
	if !strings.Contains(buildInstructions(biz), extra) {
		t.Fatal("custom prompt additions not appended")
	}
}
