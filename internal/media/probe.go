package media

import (
	"fmt"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ProbeInfo summarizes the downloaded MP4 container.
type ProbeInfo struct {
	Duration    time.Duration
	AudioTracks int
	TotalTracks int
	Size        int64
}

// ProbeMP4 inspects an MP4 container for its duration and audio tracks.
// It is advisory: callers log the result and treat failures as warnings.
func ProbeMP4(path string) (*ProbeInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	parsed, err := mp4.DecodeFile(file)
	if err != nil {
		return nil, fmt.Errorf("parse mp4 container: %w", err)
	}
	if parsed.Moov == nil || parsed.Moov.Mvhd == nil {
		return nil, fmt.Errorf("mp4 container has no movie header")
	}

	info := &ProbeInfo{Size: stat.Size()}
	if timescale := parsed.Moov.Mvhd.Timescale; timescale > 0 {
		seconds := float64(parsed.Moov.Mvhd.Duration) / float64(timescale)
		info.Duration = time.Duration(seconds * float64(time.Second))
	}
	for _, trak := range parsed.Moov.Traks {
		info.TotalTracks++
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "soun" {
			info.AudioTracks++
		}
	}
	return info, nil
}
