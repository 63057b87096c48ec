package media

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWAVRoundTrip(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768, 42}
	path := filepath.Join(t.TempDir(), "test.wav")
	if err := WritePCM16WAV(path, samples, WhisperSampleRate); err != nil {
		t.Fatal(err)
	}

	got, rate, err := ReadWAVMono(path)
	if err != nil {
		t.Fatal(err)
	}
	if rate != WhisperSampleRate {
		t.Fatalf("sample rate = %d, want %d", rate, WhisperSampleRate)
	}
	if len(got) != len(samples) {
		t.Fatalf("sample count = %d, want %d", len(got), len(samples))
	}
	for i, want := range samples {
		back := int16(math.Round(float64(got[i]) * 32768))
		if back != want {
			t.Errorf("sample %d = %d, want %d", i, back, want)
		}
	}
}

func TestReadWAVMonoRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadWAVMono(path); err == nil {
		t.Fatal("expected error for non-wav input")
	}
}

func TestFloat32ToPCM16Clamps(t *testing.T) {
	out := Float32ToPCM16([]float32{0, 0.5, 2.0, -2.0})
	if out[0] != 0 {
		t.Errorf("out[0] = %d", out[0])
	}
	if out[2] != 32767 {
		t.Errorf("out[2] = %d, want clamped max", out[2])
	}
	if out[3] != -32767 {
		t.Errorf("out[3] = %d, want clamped min", out[3])
	}
	if Float32ToPCM16(nil) != nil {
		t.Error("nil input should return nil")
	}
}
