package audio

import "encoding/base64"

// NormalizePayload returns the canonical base64 text form of an audio frame.
// Both legs of the bridge carry base64-encoded G.711 μ-law, so a payload that
// already decodes as base64 passes through untouched; anything else is treated
// as raw sample bytes and encoded.
func NormalizePayload(payload string) string {
	if payload == "" {
		return ""
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return payload
	}
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// DecodePayload returns the raw sample bytes of a frame, accepting either
// base64 text or raw bytes.
func DecodePayload(payload string) []byte {
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return []byte(payload)
	}
	return decoded
}
