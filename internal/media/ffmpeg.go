// Package media prepares downloaded audio for the speech backends.
package media

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// WhisperSampleRate is the sample rate whisper models expect.
const WhisperSampleRate = 16000

// ExtractPCM decodes the input container to a mono 16kHz PCM WAV file in
// tmpDir using ffmpeg and returns the written path.
func ExtractPCM(ctx context.Context, inputPath, tmpDir string) (string, error) {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(tmpDir, base+"_16k.wav")

	cmd := exec.CommandContext(ctx, ffmpeg,
		"-y",
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", fmt.Sprint(WhisperSampleRate),
		"-f", "wav",
		outPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg decode: %w: %s", err, lastLine(output))
	}
	return outPath, nil
}

func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
