package speech

import "context"

// Options configures a transcription request.
type Options struct {
	Language       string // empty means auto-detect; forcing a language also forces transcription over translation
	InitialPrompt  string // optional priming prompt
	Temperature    float32
	TemperatureSet bool // true when Temperature should override the backend default
}

// Chunk is a time-aligned portion of transcribed text. End is nil when the
// model leaves the final chunk open-ended.
type Chunk struct {
	Text  string   `json:"text"`
	Start float64  `json:"start"`
	End   *float64 `json:"end"`
}

// Result holds the transcription outcome returned by a backend. Chunks are
// ordered by start time.
type Result struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Chunks   []Chunk `json:"chunks"`
}

// Transcriber converts an audio file into a Result.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error)
	Close() error
}
