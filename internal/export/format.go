// Package export serializes transcription results into output files.
package export

import (
	"fmt"

	"github.com/sjzar/ytscribe/internal/speech"
)

// Format is a closed set of output serializations. Adding a format means
// extending the switch in Write, which the compiler checks at every call.
type Format int

const (
	FormatTXT Format = iota
	FormatJSON
	FormatSRT
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatSRT:
		return "srt"
	default:
		return "txt"
	}
}

func (f Format) String() string { return f.Ext() }

// ParseChoice maps an interactive menu selection ("1", "2", "3") to a
// Format. Unrecognized input defaults to txt.
func ParseChoice(choice string) Format {
	switch choice {
	case "2":
		return FormatJSON
	case "3":
		return FormatSRT
	default:
		return FormatTXT
	}
}

// Write serializes the result into "<base>.<ext>" and returns the written
// path. The file is truncated if it already exists.
func Write(res *speech.Result, f Format, base string) (string, error) {
	path := fmt.Sprintf("%s.%s", base, f.Ext())

	var err error
	switch f {
	case FormatJSON:
		err = writeJSON(res, path)
	case FormatSRT:
		err = writeSRT(res, path)
	default:
		err = writeTXT(res, path)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
