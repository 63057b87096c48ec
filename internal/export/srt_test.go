package export

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/sjzar/ytscribe/internal/speech"
)

func TestFormatSRTTimestampZeroPadding(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{59.999, "00:00:59,999"},
		{60, "00:01:00,000"},
		{61.042, "00:01:01,042"},
		{3599.999, "00:59:59,999"},
		{3600, "01:00:00,000"},
		{3661.007, "01:01:01,007"},
	}
	for _, tt := range tests {
		if got := FormatSRTTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatSRTTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSRTTimestampRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	samples := []float64{0, 0.001, 0.999, 1, 59.999, 60, 3599.999}
	for i := 0; i < 1000; i++ {
		samples = append(samples, rng.Float64()*3600)
	}
	for _, sec := range samples {
		formatted := FormatSRTTimestamp(sec)
		if len(formatted) != len("00:00:00,000") {
			t.Fatalf("FormatSRTTimestamp(%v) = %q, wrong width", sec, formatted)
		}
		parsed, err := ParseSRTTimestamp(formatted)
		if err != nil {
			t.Fatalf("ParseSRTTimestamp(%q): %v", formatted, err)
		}
		if math.Abs(parsed-sec) > 0.001 {
			t.Fatalf("round trip %v -> %q -> %v exceeds 1ms", sec, formatted, parsed)
		}
	}
}

func TestParseSRTTimestampInvalid(t *testing.T) {
	for _, ts := range []string{"", "00:00:00", "00:00,000", "aa:bb:cc,ddd"} {
		if _, err := ParseSRTTimestamp(ts); err == nil {
			t.Errorf("ParseSRTTimestamp(%q) expected error", ts)
		}
	}
}

func secPtr(v float64) *float64 { return &v }

func TestWriteSRTGolden(t *testing.T) {
	res := &speech.Result{
		Chunks: []speech.Chunk{
			{Text: "hello", Start: 0.0, End: secPtr(1.5)},
			{Text: "world", Start: 1.5, End: secPtr(3.0)},
		},
	}
	path, err := Write(res, FormatSRT, filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:00:00,000 --> 00:00:01,500\nhello\n\n2\n00:00:01,500 --> 00:00:03,000\nworld\n\n"
	if string(data) != want {
		t.Fatalf("srt output mismatch:\ngot:  %q\nwant: %q", string(data), want)
	}
}

func TestWriteSRTOpenEndedChunk(t *testing.T) {
	res := &speech.Result{
		Chunks: []speech.Chunk{{Text: "tail", Start: 2.0, End: nil}},
	}
	path, err := Write(res, FormatSRT, filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:00:02,000 --> 00:00:02,000\ntail\n\n"
	if string(data) != want {
		t.Fatalf("srt output mismatch:\ngot:  %q\nwant: %q", string(data), want)
	}
}
