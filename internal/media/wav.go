package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// WritePCM16WAV writes mono PCM16 samples as a RIFF/WAVE file.
func WritePCM16WAV(path string, samples []int16, sampleRate int) error {
	if sampleRate <= 0 {
		sampleRate = WhisperSampleRate
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	dataSize := len(samples) * 2
	riffSize := 36 + dataSize
	byteRate := sampleRate * 2

	header := make([]byte, 44)
	copy(header[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(header[4:], uint32(riffSize))
	copy(header[8:], []byte("WAVEfmt "))
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], 1)
	binary.LittleEndian.PutUint16(header[22:], 1)
	binary.LittleEndian.PutUint32(header[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:], 2)
	binary.LittleEndian.PutUint16(header[34:], 16)
	copy(header[36:], []byte("data"))
	binary.LittleEndian.PutUint32(header[40:], uint32(dataSize))

	if _, err := file.Write(header); err != nil {
		return err
	}

	payload := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(payload[i*2:], uint16(sample))
	}
	_, err = file.Write(payload)
	return err
}

// ReadWAVMono reads a mono PCM16 WAV file and returns the samples as
// float32 in [-1, 1] along with the sample rate.
func ReadWAVMono(path string) ([]float32, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	var riff [12]byte
	if _, err := io.ReadFull(file, riff[:]); err != nil {
		return nil, 0, fmt.Errorf("read wav header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, 0, errors.New("not a RIFF/WAVE file")
	}

	var (
		sampleRate int
		channels   int
		bitDepth   int
		haveFormat bool
	)

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(file, chunkHeader[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, 0, errors.New("wav file has no data chunk")
			}
			return nil, 0, err
		}
		chunkID := string(chunkHeader[0:4])
		chunkSize := int64(binary.LittleEndian.Uint32(chunkHeader[4:8]))

		switch chunkID {
		case "fmt ":
			fmtChunk := make([]byte, chunkSize)
			if _, err := io.ReadFull(file, fmtChunk); err != nil {
				return nil, 0, fmt.Errorf("read fmt chunk: %w", err)
			}
			if format := binary.LittleEndian.Uint16(fmtChunk[0:2]); format != 1 {
				return nil, 0, fmt.Errorf("unsupported wav format tag %d, want PCM", format)
			}
			channels = int(binary.LittleEndian.Uint16(fmtChunk[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(fmtChunk[4:8]))
			bitDepth = int(binary.LittleEndian.Uint16(fmtChunk[14:16]))
			haveFormat = true
		case "data":
			if !haveFormat {
				return nil, 0, errors.New("wav data chunk before fmt chunk")
			}
			if channels != 1 {
				return nil, 0, fmt.Errorf("unsupported channel count %d, want mono", channels)
			}
			if bitDepth != 16 {
				return nil, 0, fmt.Errorf("unsupported bit depth %d, want 16", bitDepth)
			}
			payload := make([]byte, chunkSize)
			if _, err := io.ReadFull(file, payload); err != nil {
				return nil, 0, fmt.Errorf("read data chunk: %w", err)
			}
			samples := make([]float32, len(payload)/2)
			for i := range samples {
				v := int16(binary.LittleEndian.Uint16(payload[i*2:]))
				samples[i] = float32(v) / 32768
			}
			return samples, sampleRate, nil
		default:
			// Skip unknown chunks, padding to even size per RIFF rules.
			skip := chunkSize
			if skip%2 == 1 {
				skip++
			}
			if _, err := file.Seek(skip, io.SeekCurrent); err != nil {
				return nil, 0, err
			}
		}
	}
}

// Float32ToPCM16 clamps float samples to [-1, 1] and quantizes to int16.
func Float32ToPCM16(src []float32) []int16 {
	if len(src) == 0 {
		return nil
	}
	dst := make([]int16, len(src))
	for i, sample := range src {
		v := float64(sample)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		dst[i] = int16(math.Round(v * 32767))
	}
	return dst
}
