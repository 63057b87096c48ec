//go:build cgo

// Package whispercpp runs local speech recognition through the whisper.cpp
// Go bindings.
package whispercpp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/ytscribe/internal/media"
	"github.com/sjzar/ytscribe/internal/speech"
)

// Config describes how to initialise the whisper.cpp backend.
type Config struct {
	ModelPath string
	Selection speech.Selection
}

// Transcriber wraps a whisper.cpp model instance.
type Transcriber struct {
	mu    sync.Mutex
	model whisper.Model
	cfg   Config
}

// New loads the ggml weights and prepares a transcriber bound to the
// resolved compute selection.
func New(cfg Config) (*Transcriber, error) {
	path := strings.TrimSpace(cfg.ModelPath)
	if path == "" {
		return nil, errors.New("whisper model path is required")
	}

	model, err := whisper.New(path)
	if err != nil {
		return nil, fmt.Errorf("load whisper model: %w", err)
	}

	log.Info().
		Str("model", path).
		Str("device", string(cfg.Selection.Device)).
		Bool("half_precision", cfg.Selection.HalfPrecision).
		Int("batch_size", cfg.Selection.BatchSize).
		Msg("loaded whisper model")

	return &Transcriber{model: model, cfg: cfg}, nil
}

// Close releases the underlying model resources.
func (t *Transcriber) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.model != nil {
		err := t.model.Close()
		t.model = nil
		return err
	}
	return nil
}

// Transcribe decodes the audio file to 16kHz mono PCM and runs whisper.cpp
// over the whole of it, returning time-aligned chunks. whisper.cpp handles
// long-form audio through its fixed 30-second windowing.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string, opts speech.Options) (*speech.Result, error) {
	tmpDir, err := os.MkdirTemp("", "ytscribe-pcm-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	wavPath, err := media.ExtractPCM(ctx, audioPath, tmpDir)
	if err != nil {
		return nil, err
	}

	samples, sampleRate, err := media.ReadWAVMono(wavPath)
	if err != nil {
		return nil, err
	}
	if sampleRate != int(whisper.SampleRate) {
		return nil, fmt.Errorf("decoded sample rate %d, want %d", sampleRate, int(whisper.SampleRate))
	}
	if len(samples) == 0 {
		return nil, errors.New("empty audio data")
	}

	return t.process(ctx, samples, opts)
}

func (t *Transcriber) process(ctx context.Context, samples []float32, opts speech.Options) (*speech.Result, error) {
	t.mu.Lock()
	model := t.model
	cfg := t.cfg
	t.mu.Unlock()
	if model == nil {
		return nil, errors.New("transcriber closed")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	wctx, err := model.NewContext()
	if err != nil {
		return nil, fmt.Errorf("create whisper context: %w", err)
	}

	threads := cfg.Selection.Threads
	if threads <= 0 {
		threads = 1
	}
	wctx.SetThreads(uint(threads))

	// Forcing a language also pins the task to transcription; translation
	// mode only applies under auto-detection.
	languageOpt := "auto"
	if lang := strings.TrimSpace(opts.Language); lang != "" {
		languageOpt = lang
		wctx.SetTranslate(false)
	}
	if err := wctx.SetLanguage(languageOpt); err != nil {
		return nil, err
	}

	if opts.InitialPrompt != "" {
		wctx.SetInitialPrompt(opts.InitialPrompt)
	}
	if opts.TemperatureSet {
		wctx.SetTemperature(opts.Temperature)
	}

	encoderCb := whisper.EncoderBeginCallback(func() bool {
		return ctx.Err() == nil
	})

	if err := wctx.Process(samples, encoderCb, nil, nil); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	chunks := make([]speech.Chunk, 0)
	var textBuilder strings.Builder
	for {
		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		end := seg.End.Seconds()
		chunks = append(chunks, speech.Chunk{
			Text:  strings.TrimSpace(seg.Text),
			Start: seg.Start.Seconds(),
			End:   &end,
		})
		if textBuilder.Len() > 0 {
			textBuilder.WriteByte(' ')
		}
		textBuilder.WriteString(strings.TrimSpace(seg.Text))
	}

	detected := wctx.DetectedLanguage()
	if detected == "" {
		detected = languageOpt
	}

	return &speech.Result{
		Text:     strings.TrimSpace(textBuilder.String()),
		Language: detected,
		Duration: float64(len(samples)) / float64(whisper.SampleRate),
		Chunks:   chunks,
	}, nil
}
