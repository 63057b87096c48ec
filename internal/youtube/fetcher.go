// Package youtube resolves a video URL to its best audio-only stream and
// downloads it to a local file.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog/log"
)

// ErrNoAudioStream indicates the video advertises no audio-only formats.
var ErrNoAudioStream = errors.New("no audio stream found for the provided URL")

// DefaultAudioFile is the fixed download target in the working directory.
const DefaultAudioFile = "audio.mp4"

// Fetcher downloads audio-only streams via the YouTube client library.
type Fetcher struct {
	client youtube.Client
}

// NewFetcher builds a Fetcher using the provided HTTP client for all
// network calls.
func NewFetcher(hc *http.Client) *Fetcher {
	return &Fetcher{client: youtube.Client{HTTPClient: hc}}
}

// DownloadAudio resolves the URL, picks the highest-average-bitrate
// audio-only stream and writes it to filename, truncating any existing
// file. All client and network failures are wrapped into one download
// error with the original message attached.
func (f *Fetcher) DownloadAudio(ctx context.Context, videoURL, filename string) (string, error) {
	if filename == "" {
		filename = DefaultAudioFile
	}

	video, err := f.client.GetVideoContext(ctx, videoURL)
	if err != nil {
		return "", fmt.Errorf("download from youtube: %w", err)
	}

	format, err := pickAudioFormat(video.Formats)
	if err != nil {
		return "", fmt.Errorf("download from youtube: %w", err)
	}

	log.Debug().
		Str("video_id", video.ID).
		Str("mime_type", format.MimeType).
		Int("avg_bitrate", format.AverageBitrate).
		Msg("selected audio stream")

	stream, size, err := f.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("download from youtube: %w", err)
	}
	defer stream.Close()

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("download from youtube: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, stream)
	if err != nil {
		return "", fmt.Errorf("download from youtube: %w", err)
	}

	log.Info().Str("path", filename).Int64("bytes", written).Int64("expected", size).Msg("downloaded audio stream")
	return filename, nil
}

// pickAudioFormat returns the audio-only format with the highest average
// bitrate, falling back to the nominal bitrate when the average is absent.
func pickAudioFormat(formats youtube.FormatList) (*youtube.Format, error) {
	best := -1
	bestRate := -1
	for i, format := range formats {
		if !strings.HasPrefix(format.MimeType, "audio/") {
			continue
		}
		rate := format.AverageBitrate
		if rate == 0 {
			rate = format.Bitrate
		}
		if rate > bestRate {
			best = i
			bestRate = rate
		}
	}
	if best < 0 {
		return nil, ErrNoAudioStream
	}
	return &formats[best], nil
}
