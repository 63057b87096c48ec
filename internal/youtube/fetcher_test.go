package youtube

import (
	"errors"
	"testing"

	"github.com/kkdai/youtube/v2"
)

func TestPickAudioFormatHighestBitrate(t *testing.T) {
	formats := youtube.FormatList{
		{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, AverageBitrate: 500000},
		{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AverageBitrate: 129000},
		{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AverageBitrate: 142000},
		{ItagNo: 250, MimeType: `audio/webm; codecs="opus"`, AverageBitrate: 69000},
	}
	format, err := pickAudioFormat(formats)
	if err != nil {
		t.Fatal(err)
	}
	if format.ItagNo != 251 {
		t.Fatalf("picked itag %d, want 251", format.ItagNo)
	}
}

func TestPickAudioFormatNominalFallback(t *testing.T) {
	formats := youtube.FormatList{
		{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, Bitrate: 130000},
		{ItagNo: 250, MimeType: `audio/webm; codecs="opus"`, Bitrate: 70000},
	}
	format, err := pickAudioFormat(formats)
	if err != nil {
		t.Fatal(err)
	}
	if format.ItagNo != 140 {
		t.Fatalf("picked itag %d, want 140", format.ItagNo)
	}
}

func TestPickAudioFormatNoAudio(t *testing.T) {
	formats := youtube.FormatList{
		{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E"`, AverageBitrate: 500000},
	}
	if _, err := pickAudioFormat(formats); !errors.Is(err, ErrNoAudioStream) {
		t.Fatalf("err = %v, want ErrNoAudioStream", err)
	}
	if _, err := pickAudioFormat(nil); !errors.Is(err, ErrNoAudioStream) {
		t.Fatalf("err = %v, want ErrNoAudioStream", err)
	}
}
