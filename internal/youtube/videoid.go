package youtube

import (
	"net/url"
	"strings"
)

// FallbackOutputBase is used when no video ID can be parsed from the URL.
const FallbackOutputBase = "transcription"

// ExtractVideoID pulls the value of the "v" query parameter from a watch
// URL. It reports false when the URL carries no such parameter.
func ExtractVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err == nil {
		if id := u.Query().Get("v"); id != "" {
			return id, true
		}
	}
	return "", false
}

// OutputBase derives the transcript base filename from the video URL:
// "transcript_<ID>" when the ID is present, otherwise the generic fallback.
func OutputBase(rawURL string) string {
	if id, ok := ExtractVideoID(rawURL); ok {
		return "transcript_" + id
	}
	return FallbackOutputBase
}
