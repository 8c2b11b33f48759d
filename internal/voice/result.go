package voice

import (
	"encoding/json"
	"strings"
)

// Kaldi-style recognizers (vosk) report results as small JSON documents:
// {"partial": "..."} while listening and {"text": "..."} at an utterance boundary.
type kaldiResult struct {
	Partial string `json:"partial"`
	Text    string `json:"text"`
}

// DecodePartial extracts the partial transcript from a recognizer payload.
// Malformed payloads decode to an empty string.
func DecodePartial(payload string) string {
	var r kaldiResult
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return ""
	}
	return strings.TrimSpace(r.Partial)
}

// DecodeText extracts the final transcript from a recognizer payload.
// Malformed payloads decode to an empty string.
func DecodeText(payload string) string {
	var r kaldiResult
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return ""
	}
	return strings.TrimSpace(r.Text)
}
