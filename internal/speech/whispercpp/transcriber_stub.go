//go:build !cgo

package whispercpp

import (
	"context"
	"errors"

	"github.com/sjzar/ytscribe/internal/speech"
)

// Config describes how to initialise the whisper.cpp backend.
type Config struct {
	ModelPath string
	Selection speech.Selection
}

// Transcriber is unavailable without cgo; use the api backend instead.
type Transcriber struct{}

var errNoCgo = errors.New("local whisper backend requires a cgo build, configure backend \"api\" instead")

func New(cfg Config) (*Transcriber, error) {
	return nil, errNoCgo
}

func (t *Transcriber) Close() error { return nil }

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string, opts speech.Options) (*speech.Result, error) {
	return nil, errNoCgo
}
