// Package ytscribe wires the fetch, transcribe and write stages into one
// run.
package ytscribe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/ytscribe/internal/export"
	"github.com/sjzar/ytscribe/internal/media"
	"github.com/sjzar/ytscribe/internal/speech"
	"github.com/sjzar/ytscribe/internal/speech/models"
	openaibackend "github.com/sjzar/ytscribe/internal/speech/openai"
	"github.com/sjzar/ytscribe/internal/speech/whispercpp"
	"github.com/sjzar/ytscribe/internal/youtube"
	"github.com/sjzar/ytscribe/internal/ytscribe/conf"
	"github.com/sjzar/ytscribe/pkg/util"
)

// ErrEmptyURL aborts a run before any download or transcription work.
var ErrEmptyURL = errors.New("no URL provided")

// RunRequest is the per-run input collected from the user.
type RunRequest struct {
	URL      string
	Format   export.Format
	Device   string
	Language string
}

// RunResult reports what a completed run produced.
type RunResult struct {
	Transcript *speech.Result
	OutputPath string
}

// App owns the long-lived pieces of the pipeline: configuration and the
// HTTP client with its explicit trust roots.
type App struct {
	cfg        *conf.Config
	httpClient *http.Client
}

// New builds an App from the loaded configuration.
func New(cfg *conf.Config) (*App, error) {
	timeout := time.Duration(cfg.Network.TimeoutSeconds) * time.Second
	client, err := util.NewHTTPClient(timeout, cfg.Network.CABundle)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, httpClient: client}, nil
}

// Run executes one fetch → transcribe → write pass. Any stage failure
// aborts the run; there are no retries.
func (a *App) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if req.URL == "" {
		return nil, ErrEmptyURL
	}

	log.Info().Str("url", req.URL).Msg("downloading audio")
	fetcher := youtube.NewFetcher(a.httpClient)
	audioPath, err := fetcher.DownloadAudio(ctx, req.URL, a.cfg.Output.AudioFile)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", audioPath).Msg("audio saved")

	if info, err := media.ProbeMP4(audioPath); err != nil {
		log.Warn().Err(err).Msg("could not probe downloaded container")
	} else {
		log.Info().
			Dur("duration", info.Duration).
			Int("audio_tracks", info.AudioTracks).
			Int64("bytes", info.Size).
			Msg("probed downloaded audio")
	}

	transcriber, opts, err := a.buildTranscriber(ctx, req)
	if err != nil {
		return nil, err
	}
	defer transcriber.Close()

	log.Info().Msg("transcribing audio")
	result, err := transcriber.Transcribe(ctx, audioPath, opts)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}

	outputPath, err := export.Write(result, req.Format, youtube.OutputBase(req.URL))
	if err != nil {
		return nil, err
	}
	return &RunResult{Transcript: result, OutputPath: outputPath}, nil
}

// buildTranscriber resolves the device and instantiates the configured
// backend, with run inputs overriding configured defaults.
func (a *App) buildTranscriber(ctx context.Context, req RunRequest) (speech.Transcriber, speech.Options, error) {
	opts := a.cfg.Speech.ToOptions()
	if req.Language != "" {
		opts.Language = req.Language
	}

	if a.cfg.Speech.Backend == conf.BackendAPI {
		t, err := openaibackend.New(openaibackend.Config{
			APIKey:     a.cfg.Speech.APIKey,
			BaseURL:    a.cfg.Speech.BaseURL,
			Model:      a.cfg.Speech.Model,
			HTTPClient: a.httpClient,
		})
		if err != nil {
			return nil, speech.Options{}, err
		}
		return t, opts, nil
	}

	device := req.Device
	if device == "" {
		device = a.cfg.Speech.Device
	}
	selection := speech.Resolve(device, speech.DetectProbe())
	if selection.Warning != "" {
		log.Warn().Msg(selection.Warning)
	}
	log.Info().Str("device", string(selection.Device)).Msg("device set")

	downloader := models.NewDownloader(a.cfg.Speech.ModelDir, a.httpClient)
	weights, err := downloader.EnsureModel(ctx, a.cfg.Speech.Model)
	if err != nil {
		return nil, speech.Options{}, fmt.Errorf("ensure model weights: %w", err)
	}

	t, err := whispercpp.New(whispercpp.Config{
		ModelPath: weights.Path,
		Selection: selection,
	})
	if err != nil {
		return nil, speech.Options{}, err
	}
	return t, opts, nil
}
