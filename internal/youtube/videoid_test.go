package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?list=PL123&v=abc123", "abc123", true},
		{"https://youtu.be/dQw4w9WgXcQ", "", false},
		{"https://www.youtube.com/watch", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := ExtractVideoID(tt.url)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tt.url, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc123&feature=share", "transcript_abc123"},
		{"https://youtu.be/abc123", "transcription"},
		{"not a url", "transcription"},
	}
	for _, tt := range tests {
		if got := OutputBase(tt.url); got != tt.want {
			t.Errorf("OutputBase(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
