package telephony

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const mediaStreamPath = "/twilio/media-stream"

type twimlResponse struct {
	XMLName xml.Name     `xml:"Response"`
	Connect twimlConnect `xml:"Connect"`
}

type twimlConnect struct {
	Stream twimlStream `xml:"Stream"`
}

type twimlStream struct {
	URL string `xml:"url,attr"`
}

// RenderStreamTwiML answers an inbound-call webhook with the instruction to
// open a media stream back to this bridge.
func RenderStreamTwiML(publicHost string) (string, error) {
	r := twimlResponse{
		Connect: twimlConnect{
			Stream: twimlStream{URL: fmt.Sprintf("wss://%s%s", publicHost, mediaStreamPath)},
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
