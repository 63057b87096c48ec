// Package openai transcribes audio through an OpenAI-compatible speech API,
// for hosts that cannot run local whisper.cpp inference.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/ytscribe/internal/speech"
)

// DefaultModel is the hosted transcription model used when none is
// configured.
const DefaultModel = "whisper-1"

// Config describes the API endpoint and credentials.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Transcriber sends audio files to a hosted transcription endpoint.
type Transcriber struct {
	client openai.Client
	model  string
}

// New builds an API-backed transcriber.
func New(cfg Config) (*Transcriber, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("api backend requires an api key")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Transcriber{client: openai.NewClient(opts...), model: model}, nil
}

// Close implements speech.Transcriber; the API client holds no resources.
func (t *Transcriber) Close() error { return nil }

// Transcribe uploads the audio file and returns the hosted model's text.
// The API reports no segment timing here, so the result carries a single
// open-ended chunk starting at zero.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string, opts speech.Options) (*speech.Result, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:  file,
		Model: openai.AudioModel(t.model),
	}
	if lang := strings.TrimSpace(opts.Language); lang != "" {
		params.Language = openai.String(lang)
	}
	if opts.InitialPrompt != "" {
		params.Prompt = openai.String(opts.InitialPrompt)
	}
	if opts.TemperatureSet {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("api transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	log.Debug().Str("model", t.model).Int("chars", len(text)).Msg("received api transcription")

	return &speech.Result{
		Text:     text,
		Language: opts.Language,
		Chunks:   []speech.Chunk{{Text: text, Start: 0}},
	}, nil
}
