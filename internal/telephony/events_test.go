package telephony

import "testing"

func TestParseEvent_Start(t *testing.T) {
	raw := `{"event":"start","streamSid":"MZabc","start":{"streamSid":"MZabc","callSid":"CA123","accountSid":"AC1","mediaFormat":{"encoding":"audio/x-mulaw","sampleRate":8000,"channels":1}}}`

	ev, err := ParseEvent([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, ok := ev.(StartEvent)
	if !ok {
		t.Fatalf("expected StartEvent, got %T", ev)
	}
	if start.StreamSID != "MZabc" || start.CallSID != "CA123" {
		t.Fatalf("unexpected identifiers: %+v", start)
	}
	if start.MediaFormat.SampleRate != 8000 {
		t.Fatalf("unexpected media format: %+v", start.MediaFormat)
	}
}

func TestParseEvent_StartWithoutBody(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"event":"start"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, ok := ev.(StartEvent)
	if !ok {
		t.Fatalf("expected StartEvent, got %T", ev)
	}
	if start.StreamSID != "" {
		t.Fatalf("expected empty stream sid, got %q", start.StreamSID)
	}
}

func TestParseEvent_Media(t *testing.T) {
	raw := `{"event":"media","streamSid":"MZabc","media":{"track":"inbound","chunk":"4","timestamp":"80","payload":"AAA="}}`

	ev, err := ParseEvent([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	media, ok := ev.(MediaEvent)
	if !ok {
		t.Fatalf("expected MediaEvent, got %T", ev)
	}
	if media.Payload != "AAA=" || media.Track != "inbound" || media.Chunk != "4" {
		t.Fatalf("unexpected media event: %+v", media)
	}
}

func TestParseEvent_Stop(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"event":"stop","streamSid":"MZabc"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stop, ok := ev.(StopEvent); !ok || stop.StreamSID != "MZabc" {
		t.Fatalf("unexpected event: %#v", ev)
	}
}

func TestParseEvent_UnknownName(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"event":"mark","streamSid":"MZabc"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unknown, ok := ev.(UnknownEvent)
	if !ok {
		t.Fatalf("expected UnknownEvent, got %T", ev)
	}
	if unknown.Name != "mark" {
		t.Fatalf("unexpected name: %s", unknown.Name)
	}
}

func TestParseEvent_MalformedJSON(t *testing.T) {
	if _, err := ParseEvent([]byte(`{"event":`)); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
